package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	domainerrors "github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		userRepo *memUserRepo
		codes    *fakeCodes
		tokens   *fakeTokens
		mailer   *fakeMailer
		service  *AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newMemUserRepo()
		codes = newFakeCodes("123456")
		tokens = newFakeTokens()
		mailer = &fakeMailer{}
		service = NewAuthService(userRepo, codes, tokens, mailer, echoTranslator{}, nopLogger{}, "15m")
	})

	registered := func(username, email string) *entities.User {
		addr, err := valueobjects.NewEmail(email)
		Expect(err).NotTo(HaveOccurred())
		user := &entities.User{Username: username, Email: addr, Role: entities.RoleUser}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
		return user
	}

	Describe("Signup", func() {
		It("cria o usuário com role user e envia o código por email", func() {
			err := service.Signup(ctx, SignupInput{Username: "capitu", Email: "capitu@example.com"})
			Expect(err).NotTo(HaveOccurred())

			user, err := userRepo.FindByUsername(ctx, "capitu")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).NotTo(BeNil())
			Expect(user.Role).To(Equal(entities.RoleUser))

			Expect(codes.issuedFor).To(HaveLen(1))
			Expect(mailer.sent).To(HaveLen(1))
			Expect(mailer.sent[0].To).To(Equal("capitu@example.com"))
		})

		It("rejeita o username reservado 'me'", func() {
			err := service.Signup(ctx, SignupInput{Username: "me", Email: "me@example.com"})
			Expect(err).To(MatchError(domainerrors.ErrReservedUsername))
			Expect(mailer.sent).To(BeEmpty())
		})

		It("rejeita username com formato inválido", func() {
			err := service.Signup(ctx, SignupInput{Username: "two words", Email: "x@example.com"})
			Expect(err).To(MatchError(entities.ErrUsernameInvalid))
		})

		It("rejeita email inválido", func() {
			err := service.Signup(ctx, SignupInput{Username: "capitu", Email: "not-an-email"})
			Expect(err).To(MatchError(domainerrors.ErrInvalidEmail))
		})

		It("rejeita username já vinculado a outro email", func() {
			registered("capitu", "capitu@example.com")

			err := service.Signup(ctx, SignupInput{Username: "capitu", Email: "outra@example.com"})
			Expect(err).To(MatchError(domainerrors.ErrUsernameTaken))
		})

		It("rejeita email já vinculado a outro username", func() {
			registered("capitu", "capitu@example.com")

			err := service.Signup(ctx, SignupInput{Username: "bentinho", Email: "capitu@example.com"})
			Expect(err).To(MatchError(domainerrors.ErrEmailTaken))
		})

		It("reemite o código para o mesmo par username e email", func() {
			existing := registered("capitu", "capitu@example.com")

			err := service.Signup(ctx, SignupInput{Username: "capitu", Email: "capitu@example.com"})
			Expect(err).NotTo(HaveOccurred())

			Expect(codes.issuedFor).To(Equal([]string{existing.ID}))
			Expect(mailer.sent).To(HaveLen(1))

			_, total, err := userRepo.List(ctx, repositories.UserFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(1)), "recadastro não deve duplicar o usuário")
		})
	})

	Describe("IssueToken", func() {
		It("troca código válido por token", func() {
			user := registered("capitu", "capitu@example.com")

			token, err := service.IssueToken(ctx, "capitu", "123456")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("token-for-capitu"))
			Expect(codes.verifiedAt).To(HaveKey(user.ID))
		})

		It("devolve not-found para username desconhecido", func() {
			_, err := service.IssueToken(ctx, "fantasma", "123456")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("propaga código inválido como falha de autenticação", func() {
			registered("capitu", "capitu@example.com")

			_, err := service.IssueToken(ctx, "capitu", "999999")
			Expect(err).To(MatchError(domainerrors.ErrInvalidConfirmationCode))
		})

		It("propaga código expirado", func() {
			registered("capitu", "capitu@example.com")
			codes.verifyErr = domainerrors.ErrConfirmationCodeExpired

			_, err := service.IssueToken(ctx, "capitu", "123456")
			Expect(err).To(MatchError(domainerrors.ErrConfirmationCodeExpired))
		})
	})

	Describe("Authenticate", func() {
		It("resolve um token emitido para o usuário dono", func() {
			registered("capitu", "capitu@example.com")

			token, err := service.IssueToken(ctx, "capitu", "123456")
			Expect(err).NotTo(HaveOccurred())

			user, err := service.Authenticate(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("capitu"))
		})

		It("rejeita token desconhecido", func() {
			_, err := service.Authenticate(ctx, "forged")
			Expect(err).To(MatchError(domainerrors.ErrInvalidToken))
		})
	})
})
