package repository

import (
	"context"

	"soundspace/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	// Delete removes the user row; every owned entity and relationship row
	// referencing it goes with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id int64) error
}

type ProfilePictureRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*model.ProfilePicture, error)
	// Upsert creates the row if absent or replaces the picture fields if
	// present. Atomic, so the signup hook and a first upload cannot race into
	// two rows.
	Upsert(ctx context.Context, userID int64, pictureURL, pictureKey *string) (*model.ProfilePicture, error)
}

type SubscriptionRepository interface {
	Upsert(ctx context.Context, userID int64, token string) error
	GetByUserID(ctx context.Context, userID int64) (*model.NotificationSubscription, error)
	DeleteByUserID(ctx context.Context, userID int64) error
}

type SoundRepository interface {
	Create(ctx context.Context, sound *model.Sound) error
	GetByID(ctx context.Context, id int64) (*model.Sound, error)
	List(ctx context.Context) ([]model.Sound, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Sound, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]model.Sound, error)
	ListByPlaylist(ctx context.Context, playlistID int64) ([]model.Sound, error)
	Update(ctx context.Context, sound *model.Sound) error
	Delete(ctx context.Context, id int64) error
	CountByAlbum(ctx context.Context, albumID int64) (int, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

type AlbumRepository interface {
	Create(ctx context.Context, album *model.Album) error
	GetByID(ctx context.Context, id int64) (*model.Album, error)
	List(ctx context.Context) ([]model.Album, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Album, error)
	Update(ctx context.Context, album *model.Album) error
	Delete(ctx context.Context, id int64) error
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) error
	GetByID(ctx context.Context, id int64) (*model.Artist, error)
	List(ctx context.Context) ([]model.Artist, error)
	Update(ctx context.Context, artist *model.Artist) error
	Delete(ctx context.Context, id int64) error
}

type StyleRepository interface {
	Create(ctx context.Context, style *model.MusicStyle) error
	GetByID(ctx context.Context, id int64) (*model.MusicStyle, error)
	List(ctx context.Context) ([]model.MusicStyle, error)
	Update(ctx context.Context, style *model.MusicStyle) error
	Delete(ctx context.Context, id int64) error
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *model.Playlist) error
	GetByID(ctx context.Context, id int64) (*model.Playlist, error)
	List(ctx context.Context) ([]model.Playlist, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Playlist, error)
	Update(ctx context.Context, playlist *model.Playlist) error
	Delete(ctx context.Context, id int64) error
	// AddSound is idempotent; adding a sound twice keeps a single membership row.
	AddSound(ctx context.Context, playlistID, soundID int64) error
	RemoveSound(ctx context.Context, playlistID, soundID int64) error
	CountSounds(ctx context.Context, playlistID int64) (int, error)
}

// CommentRepository serves one comment table (sound_comments or
// playlist_comments); targetID references the respective parent entity.
type CommentRepository interface {
	Create(ctx context.Context, targetID, userID int64, message string) (*model.Comment, error)
	GetByID(ctx context.Context, commentID int64) (*model.Comment, error)
	ListByTarget(ctx context.Context, targetID int64) ([]model.Comment, error)
	Update(ctx context.Context, commentID int64, message string) (*model.Comment, error)
	Delete(ctx context.Context, commentID int64) error
	CountByTarget(ctx context.Context, targetID int64) (int, error)
}

// LikeRepository serves one like table (sound_likes or playlist_likes).
type LikeRepository interface {
	// Create inserts the (target, user) edge; returns false when the edge
	// already existed. Check-and-insert is a single statement.
	Create(ctx context.Context, targetID, userID int64) (bool, error)
	Delete(ctx context.Context, targetID, userID int64) error
	Exists(ctx context.Context, targetID, userID int64) (bool, error)
	CountByTarget(ctx context.Context, targetID int64) (int, error)
}

// FollowRepository serves one follow table (user_followings or
// playlist_followings).
type FollowRepository interface {
	// Create inserts the (follower, target) edge; returns false when the edge
	// already existed. Check-and-insert is a single statement.
	Create(ctx context.Context, followerID, targetID int64) (bool, error)
	Delete(ctx context.Context, followerID, targetID int64) error
	Exists(ctx context.Context, followerID, targetID int64) (bool, error)
	FollowerIDs(ctx context.Context, targetID int64) ([]int64, error)
	CountFollowers(ctx context.Context, targetID int64) (int, error)
}
