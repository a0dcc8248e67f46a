package ports

// Translator resolve message IDs para texto em um idioma.
// Implementado pelo serviço de i18n.
type Translator interface {
	T(lang, key string, params ...map[string]interface{}) string
}
