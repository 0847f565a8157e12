package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"soundspace/internal/access"
	"soundspace/internal/model"
	"soundspace/internal/repository"
)

// commentTarget resolves the owning user and the client route of the entity
// being commented on, and doubles as the existence check.
type commentTarget func(ctx context.Context, targetID int64) (ownerID int64, route string, err error)

// CommentService handles comments on one target type. Two instances run in
// the app, one for sounds and one for playlists, sharing everything but the
// comment table and target resolution.
type CommentService struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	guard       *access.Guard
	notifier    Notifier
	resolve     commentTarget
}

// NewSoundCommentService builds the comment service for sounds.
func NewSoundCommentService(
	commentRepo repository.CommentRepository,
	soundRepo repository.SoundRepository,
	userRepo repository.UserRepository,
	guard *access.Guard,
	notifier Notifier,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		guard:       guard,
		notifier:    notifier,
		resolve: func(ctx context.Context, targetID int64) (int64, string, error) {
			sound, err := soundRepo.GetByID(ctx, targetID)
			if err != nil {
				return 0, "", err
			}
			return sound.AddedByID, fmt.Sprintf("/details/%d", targetID), nil
		},
	}
}

// NewPlaylistCommentService builds the comment service for playlists.
func NewPlaylistCommentService(
	commentRepo repository.CommentRepository,
	playlistRepo repository.PlaylistRepository,
	userRepo repository.UserRepository,
	guard *access.Guard,
	notifier Notifier,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		guard:       guard,
		notifier:    notifier,
		resolve: func(ctx context.Context, targetID int64) (int64, string, error) {
			playlist, err := playlistRepo.GetByID(ctx, targetID)
			if err != nil {
				return 0, "", err
			}
			return playlist.AddedByID, fmt.Sprintf("/playlists/%d", targetID), nil
		},
	}
}

// Create posts a comment. The timestamp is server-assigned by the insert.
// The target's owner and every @-mentioned user get notified; mentions are
// de-duplicated and the author never notifies themselves.
func (s *CommentService) Create(ctx context.Context, actor *access.Identity, targetID int64, req model.CreateCommentRequest) (*model.Comment, error) {
	if err := s.guard.Check(access.KindComment, access.OpCreate, actor, nil); err != nil {
		return nil, err
	}

	if err := validateMessage(req.Message); err != nil {
		return nil, err
	}

	ownerID, route, err := s.resolve(ctx, targetID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, targetID, actor.UserID, req.Message)
	if err != nil {
		return nil, err
	}

	if author, err := s.userRepo.GetByID(ctx, actor.UserID); err == nil {
		summary := &model.UserSummary{ID: author.ID, Username: author.Username}
		if author.ProfilePicture != nil {
			summary.PictureURL = author.ProfilePicture.PictureURL
		}
		comment.Author = summary
	}

	log.Printf("[CommentService] User %d commented on target %d", actor.UserID, targetID)

	if s.notifier != nil {
		s.notifyMentions(ctx, actor.UserID, req.Message, route)

		if ownerID != actor.UserID {
			body := "New comment on your content"
			if comment.Author != nil {
				body = comment.Author.Username + " commented: " + truncate(req.Message, 80)
			}
			s.notifier.Notify(ctx, ownerID, "New Comment", body, route)
		}
	}

	return comment, nil
}

// ListByTarget returns the target's comments, oldest first, after verifying
// the target exists.
func (s *CommentService) ListByTarget(ctx context.Context, targetID int64) ([]model.Comment, error) {
	if _, _, err := s.resolve(ctx, targetID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByTarget(ctx, targetID)
}

// Update edits a comment's message. Author or administrator only; the
// timestamp never changes.
func (s *CommentService) Update(ctx context.Context, actor *access.Identity, commentID int64, req model.UpdateCommentRequest) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(access.KindComment, access.OpUpdate, actor, comment); err != nil {
		return nil, err
	}

	if err := validateMessage(req.Message); err != nil {
		return nil, err
	}

	return s.commentRepo.Update(ctx, commentID, req.Message)
}

// Delete removes a comment. Author or administrator only.
func (s *CommentService) Delete(ctx context.Context, actor *access.Identity, commentID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := s.guard.Check(access.KindComment, access.OpDelete, actor, comment); err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// notifyMentions scans the message for @username tokens and notifies each
// mentioned user once. Unknown usernames and self-mentions are skipped.
func (s *CommentService) notifyMentions(ctx context.Context, authorID int64, message, route string) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return
	}

	seen := make(map[string]struct{})
	for _, token := range strings.Fields(message) {
		if len(token) < 2 || token[0] != '@' {
			continue
		}
		username := strings.TrimRight(token[1:], ".,!?:;")
		if username == "" || username == author.Username {
			continue
		}
		if _, ok := seen[username]; ok {
			continue
		}
		seen[username] = struct{}{}

		mentioned, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			if !errors.Is(err, model.ErrUserNotFound) {
				log.Printf("[CommentService] Failed to resolve mention @%s: %v", username, err)
			}
			continue
		}

		s.notifier.Notify(ctx, mentioned.ID,
			"You were mentioned",
			author.Username+" mentioned you in a comment",
			route)
	}
}

func validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return model.ErrMessageRequired
	}
	if len(message) > model.MaxCommentLength {
		return model.ErrMessageTooLong
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
