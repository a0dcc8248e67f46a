package services

import (
	"context"
	"fmt"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	domainerrors "github.com/reviewhub/reviewhub-backend/internal/domain/errors"
	"github.com/reviewhub/reviewhub-backend/internal/domain/ports"
	"github.com/reviewhub/reviewhub-backend/internal/domain/repositories"
)

// Fakes em memória para os specs dos services. Implementam apenas o
// comportamento observável pelos services, sem concorrência.

type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }

type memUserRepo struct {
	users  map[string]*entities.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entities.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domainerrors.ErrUsernameTaken
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, user *entities.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context, _ repositories.UserFilters) ([]*entities.User, int64, error) {
	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, int64(len(users)), nil
}

type memTitleRepo struct {
	titles map[string]*entities.Title
	nextID int
}

func newMemTitleRepo() *memTitleRepo {
	return &memTitleRepo{titles: map[string]*entities.Title{}}
}

func (r *memTitleRepo) add(name string) *entities.Title {
	r.nextID++
	title := &entities.Title{
		ID:   fmt.Sprintf("title-%d", r.nextID),
		Name: name,
		Year: 2020,
	}
	r.titles[title.ID] = title
	return title
}

func (r *memTitleRepo) Create(_ context.Context, title *entities.Title, _ []string) error {
	r.nextID++
	title.ID = fmt.Sprintf("title-%d", r.nextID)
	clone := *title
	r.titles[title.ID] = &clone
	return nil
}

func (r *memTitleRepo) FindByID(_ context.Context, id string) (*entities.Title, error) {
	if title, ok := r.titles[id]; ok {
		clone := *title
		return &clone, nil
	}
	return nil, nil
}

func (r *memTitleRepo) Update(_ context.Context, title *entities.Title, _ []string) error {
	clone := *title
	r.titles[title.ID] = &clone
	return nil
}

func (r *memTitleRepo) Delete(_ context.Context, id string) error {
	delete(r.titles, id)
	return nil
}

func (r *memTitleRepo) List(_ context.Context, _ repositories.TitleFilters) ([]*entities.Title, int64, error) {
	titles := make([]*entities.Title, 0, len(r.titles))
	for _, title := range r.titles {
		clone := *title
		titles = append(titles, &clone)
	}
	return titles, int64(len(titles)), nil
}

type memReviewRepo struct {
	reviews map[string]*entities.Review
	nextID  int
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: map[string]*entities.Review{}}
}

func (r *memReviewRepo) Create(_ context.Context, review *entities.Review) error {
	for _, existing := range r.reviews {
		if existing.TitleID == review.TitleID && existing.AuthorID == review.AuthorID {
			return domainerrors.ErrDuplicateReview
		}
	}
	r.nextID++
	review.ID = fmt.Sprintf("review-%d", r.nextID)
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) FindByID(_ context.Context, titleID, reviewID string) (*entities.Review, error) {
	if review, ok := r.reviews[reviewID]; ok && review.TitleID == titleID {
		clone := *review
		return &clone, nil
	}
	return nil, nil
}

func (r *memReviewRepo) FindByTitleAndAuthor(_ context.Context, titleID, authorID string) (*entities.Review, error) {
	for _, review := range r.reviews {
		if review.TitleID == titleID && review.AuthorID == authorID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memReviewRepo) Update(_ context.Context, review *entities.Review) error {
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id string) error {
	delete(r.reviews, id)
	return nil
}

func (r *memReviewRepo) ListByTitle(_ context.Context, titleID string, _ repositories.Pagination) ([]*entities.Review, int64, error) {
	reviews := make([]*entities.Review, 0)
	for _, review := range r.reviews {
		if review.TitleID == titleID {
			clone := *review
			reviews = append(reviews, &clone)
		}
	}
	return reviews, int64(len(reviews)), nil
}

type memCommentRepo struct {
	comments map[string]*entities.Comment
	nextID   int
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[string]*entities.Comment{}}
}

func (r *memCommentRepo) Create(_ context.Context, comment *entities.Comment) error {
	r.nextID++
	comment.ID = fmt.Sprintf("comment-%d", r.nextID)
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *memCommentRepo) FindByID(_ context.Context, reviewID, commentID string) (*entities.Comment, error) {
	if comment, ok := r.comments[commentID]; ok && comment.ReviewID == reviewID {
		clone := *comment
		return &clone, nil
	}
	return nil, nil
}

func (r *memCommentRepo) Update(_ context.Context, comment *entities.Comment) error {
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *memCommentRepo) Delete(_ context.Context, id string) error {
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) ListByReview(_ context.Context, reviewID string, _ repositories.Pagination) ([]*entities.Comment, int64, error) {
	comments := make([]*entities.Comment, 0)
	for _, comment := range r.comments {
		if comment.ReviewID == reviewID {
			clone := *comment
			comments = append(comments, &clone)
		}
	}
	return comments, int64(len(comments)), nil
}

// fakeCodes emite códigos previsíveis e registra o que validou
type fakeCodes struct {
	nextCode   string
	issuedFor  []string
	verifyErr  error
	verifiedAt map[string]string
}

func newFakeCodes(code string) *fakeCodes {
	return &fakeCodes{nextCode: code, verifiedAt: map[string]string{}}
}

func (f *fakeCodes) Issue(_ context.Context, userID string) (string, error) {
	f.issuedFor = append(f.issuedFor, userID)
	return f.nextCode, nil
}

func (f *fakeCodes) Verify(_ context.Context, userID, code string) error {
	if f.verifyErr != nil {
		return f.verifyErr
	}
	if code != f.nextCode {
		return domainerrors.ErrInvalidConfirmationCode
	}
	f.verifiedAt[userID] = code
	return nil
}

type fakeTokens struct {
	issued map[string]*entities.User
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{issued: map[string]*entities.User{}}
}

func (f *fakeTokens) Issue(user *entities.User) (string, error) {
	token := "token-for-" + user.Username
	f.issued[token] = user
	return token, nil
}

func (f *fakeTokens) Verify(token string) (*ports.TokenClaims, error) {
	user, ok := f.issued[token]
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}
	return &ports.TokenClaims{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// echoTranslator devolve a chave, suficiente para os specs
type echoTranslator struct{}

func (echoTranslator) T(_ string, key string, _ ...map[string]interface{}) string {
	return key
}
