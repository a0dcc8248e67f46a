package services

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	domainerrors "github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
)

var _ = Describe("ReviewService", func() {
	var (
		ctx         context.Context
		reviewRepo  *memReviewRepo
		commentRepo *memCommentRepo
		titleRepo   *memTitleRepo
		service     *ReviewService

		title     *entities.Title
		author    *entities.User
		stranger  *entities.User
		moderator *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		reviewRepo = newMemReviewRepo()
		commentRepo = newMemCommentRepo()
		titleRepo = newMemTitleRepo()
		service = NewReviewService(reviewRepo, commentRepo, titleRepo, nopLogger{})

		title = titleRepo.add("Dom Casmurro")
		author = &entities.User{ID: "author-1", Username: "capitu", Role: entities.RoleUser}
		stranger = &entities.User{ID: "stranger-1", Username: "jose", Role: entities.RoleUser}
		moderator = &entities.User{ID: "mod-1", Username: "escobar", Role: entities.RoleModerator}
	})

	Describe("CreateReview", func() {
		It("cria a review do ator para a obra", func() {
			review, err := service.CreateReview(ctx, author, title.ID, "ótimo", 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(review.ID).NotTo(BeEmpty())
			Expect(review.AuthorID).To(Equal(author.ID))
			Expect(review.Score).To(Equal(9))
		})

		It("devolve not-found para obra inexistente", func() {
			_, err := service.CreateReview(ctx, author, "missing", "texto", 5)
			Expect(err).To(MatchError(domainerrors.ErrTitleNotFound))
		})

		It("rejeita score fora da faixa", func() {
			_, err := service.CreateReview(ctx, author, title.ID, "texto", 11)
			Expect(err).To(MatchError(entities.ErrScoreOutOfRange))
		})

		It("rejeita segunda review do mesmo autor nomeando a obra", func() {
			_, err := service.CreateReview(ctx, author, title.ID, "primeira", 8)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateReview(ctx, author, title.ID, "segunda", 3)
			Expect(err).To(MatchError(domainerrors.ErrDuplicateReview))

			var domainErr *domainerrors.DomainError
			Expect(errors.As(err, &domainErr)).To(BeTrue())
			Expect(domainErr.Params).To(HaveKeyWithValue("Title", "Dom Casmurro"))
		})

		It("autores distintos avaliam a mesma obra", func() {
			_, err := service.CreateReview(ctx, author, title.ID, "bom", 8)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateReview(ctx, stranger, title.ID, "ruim", 2)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("UpdateReview", func() {
		var review *entities.Review

		BeforeEach(func() {
			var err error
			review, err = service.CreateReview(ctx, author, title.ID, "original", 5)
			Expect(err).NotTo(HaveOccurred())
		})

		It("autor altera texto e nota", func() {
			text := "revisado"
			score := 7
			updated, err := service.UpdateReview(ctx, author, title.ID, review.ID, &text, &score)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Text).To(Equal("revisado"))
			Expect(updated.Score).To(Equal(7))
		})

		It("campos nil são preservados", func() {
			score := 7
			updated, err := service.UpdateReview(ctx, author, title.ID, review.ID, nil, &score)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Text).To(Equal("original"))
			Expect(updated.Score).To(Equal(7))
		})

		It("moderador altera review de terceiro", func() {
			text := "moderado"
			_, err := service.UpdateReview(ctx, moderator, title.ID, review.ID, &text, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("terceiro comum recebe forbidden", func() {
			text := "hack"
			_, err := service.UpdateReview(ctx, stranger, title.ID, review.ID, &text, nil)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("rejeita texto vazio na alteração", func() {
			text := ""
			_, err := service.UpdateReview(ctx, author, title.ID, review.ID, &text, nil)
			Expect(err).To(MatchError(entities.ErrTextRequired))
		})

		It("rejeita nota inválida na alteração", func() {
			score := 0
			_, err := service.UpdateReview(ctx, author, title.ID, review.ID, nil, &score)
			Expect(err).To(MatchError(entities.ErrScoreOutOfRange))
		})
	})

	Describe("DeleteReview", func() {
		var review *entities.Review

		BeforeEach(func() {
			var err error
			review, err = service.CreateReview(ctx, author, title.ID, "original", 5)
			Expect(err).NotTo(HaveOccurred())
		})

		It("autor apaga a própria review", func() {
			Expect(service.DeleteReview(ctx, author, title.ID, review.ID)).To(Succeed())

			_, err := service.GetReview(ctx, title.ID, review.ID)
			Expect(err).To(MatchError(domainerrors.ErrReviewNotFound))
		})

		It("moderador apaga review de terceiro", func() {
			Expect(service.DeleteReview(ctx, moderator, title.ID, review.ID)).To(Succeed())
		})

		It("terceiro comum recebe forbidden", func() {
			err := service.DeleteReview(ctx, stranger, title.ID, review.ID)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("review de outra obra é not-found", func() {
			other := titleRepo.add("Outra Obra")
			err := service.DeleteReview(ctx, author, other.ID, review.ID)
			Expect(err).To(MatchError(domainerrors.ErrReviewNotFound))
		})
	})

	Describe("Comments", func() {
		var review *entities.Review

		BeforeEach(func() {
			var err error
			review, err = service.CreateReview(ctx, author, title.ID, "original", 5)
			Expect(err).NotTo(HaveOccurred())
		})

		It("cria comentário em review existente", func() {
			comment, err := service.CreateComment(ctx, stranger, title.ID, review.ID, "discordo")
			Expect(err).NotTo(HaveOccurred())
			Expect(comment.ReviewID).To(Equal(review.ID))
			Expect(comment.AuthorID).To(Equal(stranger.ID))
		})

		It("comentário em review inexistente é not-found", func() {
			_, err := service.CreateComment(ctx, stranger, title.ID, "missing", "eco")
			Expect(err).To(MatchError(domainerrors.ErrReviewNotFound))
		})

		It("comentário precisa de texto", func() {
			_, err := service.CreateComment(ctx, stranger, title.ID, review.ID, "")
			Expect(err).To(HaveOccurred())
		})

		It("autor altera o próprio comentário", func() {
			comment, err := service.CreateComment(ctx, stranger, title.ID, review.ID, "original")
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateComment(ctx, stranger, title.ID, review.ID, comment.ID, "editado")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Text).To(Equal("editado"))
		})

		It("moderador apaga comentário de terceiro", func() {
			comment, err := service.CreateComment(ctx, stranger, title.ID, review.ID, "original")
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteComment(ctx, moderator, title.ID, review.ID, comment.ID)).To(Succeed())

			_, err = service.GetComment(ctx, title.ID, review.ID, comment.ID)
			Expect(err).To(MatchError(domainerrors.ErrCommentNotFound))
		})

		It("terceiro comum não apaga comentário alheio", func() {
			comment, err := service.CreateComment(ctx, author, title.ID, review.ID, "meu comentário")
			Expect(err).NotTo(HaveOccurred())

			err = service.DeleteComment(ctx, stranger, title.ID, review.ID, comment.ID)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("lista apenas os comentários da review", func() {
			_, err := service.CreateComment(ctx, stranger, title.ID, review.ID, "um")
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CreateComment(ctx, author, title.ID, review.ID, "dois")
			Expect(err).NotTo(HaveOccurred())

			comments, total, err := service.ListComments(ctx, title.ID, review.ID, repositories.Pagination{Page: 1, PageSize: 20})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(2)))
			Expect(comments).To(HaveLen(2))
		})
	})
})
