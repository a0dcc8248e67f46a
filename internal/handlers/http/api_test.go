package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/middleware"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/validation"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/confirmation"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/i18n"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/logging"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/persistence/postgres"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/ratelimit"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/token"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

var registerValidatorsOnce sync.Once

// captureMailer guarda os emails enviados durante o teste
type captureMailer struct {
	mu   sync.Mutex
	sent []capturedMail
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

func (m *captureMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, capturedMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *captureMailer) last(t *testing.T) capturedMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("esperava ao menos um email enviado, obteve nenhum")
	}
	return m.sent[len(m.sent)-1]
}

// apiServer é a API completa montada sobre SQLite e miniredis
type apiServer struct {
	router   *gin.Engine
	userRepo repositories.UserRepository
	tokens   *token.JWTManager
	mailer   *captureMailer
}

func setupAPI(t *testing.T) *apiServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	registerValidatorsOnce.Do(func() {
		if err := validation.Register(); err != nil {
			t.Fatalf("erro ao registrar validadores: %v", err)
		}
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("erro ao abrir banco de teste: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("erro ao migrar schema: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	i18nService, err := i18n.NewService("../../infrastructure/i18n/locales", "en")
	if err != nil {
		t.Fatalf("erro ao carregar locales: %v", err)
	}

	logger := logging.NewSlogLogger("error")

	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	genreRepo := postgres.NewGenreRepository(db)
	titleRepo := postgres.NewTitleRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	codes := confirmation.NewRedisStore(redisClient, 15*time.Minute, 5)
	limiter, err := ratelimit.NewFixedWindowLimiter(redisClient, "test:ratelimit:auth", 100, time.Minute)
	if err != nil {
		t.Fatalf("erro ao criar rate limiter: %v", err)
	}
	tokens, err := token.NewJWTManager("api-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("erro ao criar token manager: %v", err)
	}
	mailer := &captureMailer{}

	authService := services.NewAuthService(userRepo, codes, tokens, mailer, i18nService, logger, "15m")
	userService := services.NewUserService(userRepo, logger)
	catalogService := services.NewCatalogService(categoryRepo, genreRepo, titleRepo, uow, logger)
	reviewService := services.NewReviewService(reviewRepo, commentRepo, titleRepo, logger)

	router := NewRouter(
		RouterConfig{Env: "test", BaseURL: "http://localhost", AllowedOrigins: "*"},
		i18nService,
		middleware.NewAuthMiddleware(authService),
		limiter,
		Handlers{
			Auth:     NewAuthHandler(authService),
			User:     NewUserHandler(userService),
			Category: NewCategoryHandler(catalogService),
			Genre:    NewGenreHandler(catalogService),
			Title:    NewTitleHandler(catalogService),
			Review:   NewReviewHandler(reviewService),
			Comment:  NewCommentHandler(reviewService),
		},
	)

	return &apiServer{router: router, userRepo: userRepo, tokens: tokens, mailer: mailer}
}

// seedUser insere um usuário direto no repositório e emite um token
func (s *apiServer) seedUser(t *testing.T, username string, role entities.Role) (*entities.User, string) {
	t.Helper()

	email, err := valueobjects.NewEmail(username + "@example.com")
	if err != nil {
		t.Fatalf("erro ao criar email: %v", err)
	}
	user := &entities.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Role:     role,
	}
	if err := s.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("erro ao criar usuário %s: %v", username, err)
	}

	accessToken, err := s.tokens.Issue(user)
	if err != nil {
		t.Fatalf("erro ao emitir token: %v", err)
	}
	return user, accessToken
}

func (s *apiServer) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("erro ao serializar corpo: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("erro ao decodificar resposta %q: %v", w.Body.String(), err)
	}
	return out
}

var codePattern = regexp.MustCompile(`\d{6}`)

func TestAuthFlow(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"username": "capitu",
		"email":    "capitu@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("esperava status 200 no signup, obteve %d: %s", w.Code, w.Body.String())
	}

	mail := api.mailer.last(t)
	if mail.To != "capitu@example.com" {
		t.Errorf("esperava email para capitu@example.com, obteve %s", mail.To)
	}
	code := codePattern.FindString(mail.Body)
	if code == "" {
		t.Fatalf("esperava código de 6 dígitos no corpo do email, obteve %q", mail.Body)
	}

	t.Run("código errado devolve 401", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/auth/token", "", gin.H{
			"username":          "capitu",
			"confirmation_code": "000000",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	var bearer string
	t.Run("código correto emite token", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/auth/token", "", gin.H{
			"username":          "capitu",
			"confirmation_code": code,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		token, _ := body["token"].(string)
		if token == "" {
			t.Fatal("esperava token na resposta, obteve vazio")
		}
		bearer = token
	})

	t.Run("token autentica o próprio perfil", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/users/me", bearer, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["username"] != "capitu" {
			t.Errorf("esperava username capitu, obteve %v", body["username"])
		}
		if body["role"] != "user" {
			t.Errorf("esperava role user, obteve %v", body["role"])
		}
	})

	t.Run("perfil sem token devolve 401", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})
}

func TestSignupValidation(t *testing.T) {
	api := setupAPI(t)

	t.Run("username reservado devolve 400", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"username": "me",
			"email":    "me@example.com",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava status 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("email inválido devolve 400", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"username": "bentinho",
			"email":    "not-an-email",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava status 400, obteve %d", w.Code)
		}
	})

	t.Run("username com email de outro devolve 409", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"username": "escobar",
			"email":    "escobar@example.com",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200 no primeiro signup, obteve %d", w.Code)
		}

		w = api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"username": "escobar",
			"email":    "outro@example.com",
		})
		if w.Code != http.StatusConflict {
			t.Errorf("esperava status 409, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("mesmo par reemite o código", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"username": "escobar",
			"email":    "escobar@example.com",
		})
		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200 na reemissão, obteve %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCatalogAuthorization(t *testing.T) {
	api := setupAPI(t)
	_, userToken := api.seedUser(t, "bentinho", entities.RoleUser)
	_, adminToken := api.seedUser(t, "dona-gloria", entities.RoleAdmin)

	category := gin.H{"name": "Filmes", "slug": "filmes"}

	t.Run("listagem é aberta", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/categories", "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d", w.Code)
		}
	})

	t.Run("criação anônima devolve 401", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/categories", "", category)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("usuário comum devolve 403", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/categories", userToken, category)
		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
	})

	t.Run("admin cria a categoria", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/categories", adminToken, category)
		if w.Code != http.StatusCreated {
			t.Fatalf("esperava status 201, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["slug"] != "filmes" {
			t.Errorf("esperava slug filmes, obteve %v", body["slug"])
		}
	})

	t.Run("slug repetido devolve 409", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/categories", adminToken, category)
		if w.Code != http.StatusConflict {
			t.Errorf("esperava status 409, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("admin remove a categoria", func(t *testing.T) {
		w := api.do(t, http.MethodDelete, "/api/v1/categories/filmes", adminToken, nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("esperava status 204, obteve %d", w.Code)
		}
	})

	t.Run("remoção de gênero exige admin", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/genres", adminToken, gin.H{"name": "Drama", "slug": "drama"})
		if w.Code != http.StatusCreated {
			t.Fatalf("esperava status 201, obteve %d: %s", w.Code, w.Body.String())
		}

		w = api.do(t, http.MethodDelete, "/api/v1/genres/drama", userToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
	})
}

func TestReviewFlow(t *testing.T) {
	api := setupAPI(t)
	_, adminToken := api.seedUser(t, "dona-gloria", entities.RoleAdmin)
	_, authorToken := api.seedUser(t, "capitu", entities.RoleUser)
	_, otherToken := api.seedUser(t, "bentinho", entities.RoleUser)
	_, modToken := api.seedUser(t, "jose-dias", entities.RoleModerator)

	w := api.do(t, http.MethodPost, "/api/v1/categories", adminToken, gin.H{"name": "Filmes", "slug": "filmes"})
	if w.Code != http.StatusCreated {
		t.Fatalf("esperava status 201 na categoria, obteve %d: %s", w.Code, w.Body.String())
	}
	w = api.do(t, http.MethodPost, "/api/v1/genres", adminToken, gin.H{"name": "Drama", "slug": "drama"})
	if w.Code != http.StatusCreated {
		t.Fatalf("esperava status 201 no gênero, obteve %d: %s", w.Code, w.Body.String())
	}

	w = api.do(t, http.MethodPost, "/api/v1/titles", adminToken, gin.H{
		"name":     "Dom Casmurro",
		"year":     1899,
		"category": "filmes",
		"genre":    []string{"drama"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("esperava status 201 na obra, obteve %d: %s", w.Code, w.Body.String())
	}
	titleID, _ := decodeJSON(t, w)["id"].(string)
	if titleID == "" {
		t.Fatal("esperava id da obra na resposta, obteve vazio")
	}
	reviewsPath := "/api/v1/titles/" + titleID + "/reviews"

	t.Run("listagem devolve os campos completos da obra", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/titles?category=filmes", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		results, _ := body["results"].([]interface{})
		if len(results) != 1 {
			t.Fatalf("esperava 1 obra na listagem, obteve %d", len(results))
		}
		item, _ := results[0].(map[string]interface{})
		if item["name"] != "Dom Casmurro" {
			t.Errorf("esperava name Dom Casmurro, obteve %v", item["name"])
		}
		if item["year"] != float64(1899) {
			t.Errorf("esperava year 1899, obteve %v", item["year"])
		}
		category, _ := item["category"].(map[string]interface{})
		if category == nil || category["slug"] != "filmes" {
			t.Errorf("esperava categoria filmes carregada, obteve %v", item["category"])
		}
		genres, _ := item["genre"].([]interface{})
		if len(genres) != 1 {
			t.Errorf("esperava 1 gênero carregado, obteve %v", item["genre"])
		}
	})

	t.Run("nome vazio na alteração da obra devolve 400", func(t *testing.T) {
		w := api.do(t, http.MethodPatch, "/api/v1/titles/"+titleID, adminToken, gin.H{"name": ""})
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava status 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("obra com ano futuro devolve 400", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/titles", adminToken, gin.H{
			"name": "Do Futuro",
			"year": time.Now().Year() + 1,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava status 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	var reviewID string
	t.Run("usuário autenticado cria review", func(t *testing.T) {
		w := api.do(t, http.MethodPost, reviewsPath, authorToken, gin.H{"text": "obra-prima", "score": 10})
		if w.Code != http.StatusCreated {
			t.Fatalf("esperava status 201, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		reviewID, _ = body["id"].(string)
		if body["author"] != "capitu" {
			t.Errorf("esperava author capitu, obteve %v", body["author"])
		}
	})

	t.Run("review anônima devolve 401", func(t *testing.T) {
		w := api.do(t, http.MethodPost, reviewsPath, "", gin.H{"text": "anônimo", "score": 5})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("segunda review do mesmo autor devolve 409 nomeando a obra", func(t *testing.T) {
		w := api.do(t, http.MethodPost, reviewsPath, authorToken, gin.H{"text": "mudei de ideia", "score": 2})
		if w.Code != http.StatusConflict {
			t.Fatalf("esperava status 409, obteve %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Dom Casmurro") {
			t.Errorf("esperava o nome da obra no detail, obteve %s", w.Body.String())
		}
	})

	t.Run("outro autor avalia a mesma obra", func(t *testing.T) {
		w := api.do(t, http.MethodPost, reviewsPath, otherToken, gin.H{"text": "boa", "score": 7})
		if w.Code != http.StatusCreated {
			t.Errorf("esperava status 201, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rating agrega a média arredondada", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/titles/"+titleID, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d", w.Code)
		}
		body := decodeJSON(t, w)
		rating, ok := body["rating"].(float64)
		if !ok || int(rating) != 9 {
			t.Errorf("esperava rating 9 para notas 10 e 7, obteve %v", body["rating"])
		}
	})

	t.Run("terceiro comum não altera a review", func(t *testing.T) {
		w := api.do(t, http.MethodPatch, reviewsPath+"/"+reviewID, otherToken, gin.H{"score": 1})
		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("autor altera a própria review", func(t *testing.T) {
		w := api.do(t, http.MethodPatch, reviewsPath+"/"+reviewID, authorToken, gin.H{"score": 9})
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["score"] != float64(9) {
			t.Errorf("esperava score 9, obteve %v", body["score"])
		}
	})

	t.Run("texto vazio na alteração da review devolve 400", func(t *testing.T) {
		w := api.do(t, http.MethodPatch, reviewsPath+"/"+reviewID, authorToken, gin.H{"text": ""})
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava status 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	commentsPath := reviewsPath + "/" + reviewID + "/comments"
	var commentID string
	t.Run("usuário comenta a review", func(t *testing.T) {
		w := api.do(t, http.MethodPost, commentsPath, otherToken, gin.H{"text": "discordo"})
		if w.Code != http.StatusCreated {
			t.Fatalf("esperava status 201, obteve %d: %s", w.Code, w.Body.String())
		}
		commentID, _ = decodeJSON(t, w)["id"].(string)
	})

	t.Run("terceiro comum não apaga comentário alheio", func(t *testing.T) {
		w := api.do(t, http.MethodDelete, commentsPath+"/"+commentID, authorToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("moderador apaga comentário de terceiro", func(t *testing.T) {
		w := api.do(t, http.MethodDelete, commentsPath+"/"+commentID, modToken, nil)
		if w.Code != http.StatusNoContent {
			t.Errorf("esperava status 204, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("comentário em review inexistente devolve 404", func(t *testing.T) {
		w := api.do(t, http.MethodPost, reviewsPath+"/"+uuid.NewString()+"/comments", otherToken, gin.H{"text": "eco"})
		if w.Code != http.StatusNotFound {
			t.Errorf("esperava status 404, obteve %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestUserAdministration(t *testing.T) {
	api := setupAPI(t)
	user, userToken := api.seedUser(t, "bentinho", entities.RoleUser)
	_, adminToken := api.seedUser(t, "dona-gloria", entities.RoleAdmin)

	t.Run("listagem de usuários exige admin", func(t *testing.T) {
		w := api.do(t, http.MethodGet, "/api/v1/users", userToken, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}

		w = api.do(t, http.MethodGet, "/api/v1/users", adminToken, nil)
		if w.Code != http.StatusOK {
			t.Errorf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("admin não cria usuário com username reservado", func(t *testing.T) {
		w := api.do(t, http.MethodPost, "/api/v1/users", adminToken, gin.H{
			"username": "me",
			"email":    "me@example.com",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava status 400, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("admin promove usuário a moderador", func(t *testing.T) {
		w := api.do(t, http.MethodPatch, "/api/v1/users/"+user.Username, adminToken, gin.H{"role": "moderator"})
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["role"] != "moderator" {
			t.Errorf("esperava role moderator, obteve %v", body["role"])
		}
	})

	t.Run("usuário não altera o próprio role", func(t *testing.T) {
		w := api.do(t, http.MethodPatch, "/api/v1/users/me", userToken, gin.H{"role": "admin", "bio": "nova bio"})
		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
		body := decodeJSON(t, w)
		if body["role"] == "admin" {
			t.Error("esperava que o role fosse preservado, obteve admin")
		}
		if body["bio"] != "nova bio" {
			t.Errorf("esperava bio atualizada, obteve %v", body["bio"])
		}
	})

	t.Run("admin remove usuário", func(t *testing.T) {
		w := api.do(t, http.MethodDelete, "/api/v1/users/"+user.Username, adminToken, nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("esperava status 204, obteve %d: %s", w.Code, w.Body.String())
		}

		w = api.do(t, http.MethodGet, "/api/v1/users/"+user.Username, adminToken, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("esperava status 404, obteve %d", w.Code)
		}
	})
}

func TestDetectLanguageOnErrors(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/auth/signup?lang=pt-BR", "", gin.H{
		"username": "me",
		"email":    "me@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("esperava status 400, obteve %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "não é permitido") {
		t.Errorf("esperava detail em pt-BR, obteve %s", w.Body.String())
	}
}
