package ports

import "context"

// ConfirmationStore guarda códigos de confirmação de cadastro.
//
// Issue gera e persiste um código de uso único para o usuário,
// substituindo qualquer código anterior. Verify compara o código
// enviado com o esperado e o consome quando bate; códigos expiram
// e têm número limitado de tentativas de verificação.
type ConfirmationStore interface {
	Issue(ctx context.Context, userID string) (code string, err error)
	Verify(ctx context.Context, userID, code string) error
}
