package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	domainerrors "github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

var _ = Describe("UserService", func() {
	var (
		ctx      context.Context
		userRepo *memUserRepo
		service  *UserService
		existing *entities.User
	)

	seed := func(username string, role entities.Role) *entities.User {
		email, err := valueobjects.NewEmail(username + "@example.com")
		Expect(err).NotTo(HaveOccurred())
		user := &entities.User{Username: username, Email: email, Role: role}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
		return user
	}

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newMemUserRepo()
		service = NewUserService(userRepo, nopLogger{})
		existing = seed("capitu", entities.RoleUser)
	})

	Describe("UpdateUser", func() {
		It("promove o usuário a moderador", func() {
			role := "moderator"
			updated, err := service.UpdateUser(ctx, existing.Username, UpdateUserInput{Role: &role})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(entities.RoleModerator))
		})

		It("rejeita role desconhecido como erro de validação", func() {
			role := "root"
			_, err := service.UpdateUser(ctx, existing.Username, UpdateUserInput{Role: &role})
			Expect(err).To(MatchError(entities.ErrRoleInvalid))
		})

		It("rejeita email já registrado por outro usuário", func() {
			seed("escobar", entities.RoleUser)
			email := "escobar@example.com"
			_, err := service.UpdateUser(ctx, existing.Username, UpdateUserInput{Email: &email})
			Expect(err).To(MatchError(domainerrors.ErrEmailTaken))
		})

		It("devolve not-found para username desconhecido", func() {
			bio := "bio"
			_, err := service.UpdateUser(ctx, "missing", UpdateUserInput{Bio: &bio})
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("UpdateSelf", func() {
		It("ignora o campo role", func() {
			role := "admin"
			bio := "minha bio"
			updated, err := service.UpdateSelf(ctx, existing, UpdateUserInput{Role: &role, Bio: &bio})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(entities.RoleUser))
			Expect(updated.Bio).To(Equal("minha bio"))
		})
	})
})
