// Package view builds the response projections. Every entity has two shapes:
// Minimal (summary fields plus live counts) for list routes and Complete
// (Minimal plus fully nested relations) for detail and self-profile routes.
// Counts are aggregated over relationship rows at read time and are never
// stored on the entity.
package view

import (
	"context"
	"fmt"

	"soundspace/internal/model"
	"soundspace/internal/repository"
)

// Kind selects the projection granularity.
type Kind int

const (
	Minimal Kind = iota
	Complete
)

// SoundView is the projected shape of a sound.
type SoundView struct {
	model.Sound
	LikeCount    int             `json:"like_count"`
	CommentCount int             `json:"comment_count"`
	Comments     []model.Comment `json:"comments,omitempty"`
}

// AlbumView is the projected shape of an album.
type AlbumView struct {
	model.Album
	SoundCount int           `json:"sound_count"`
	Sounds     []model.Sound `json:"sounds,omitempty"`
}

// PlaylistView is the projected shape of a playlist.
type PlaylistView struct {
	model.Playlist
	SoundCount    int             `json:"sound_count"`
	LikeCount     int             `json:"like_count"`
	CommentCount  int             `json:"comment_count"`
	FollowerCount int             `json:"follower_count"`
	Sounds        []model.Sound   `json:"sounds,omitempty"`
	Comments      []model.Comment `json:"comments,omitempty"`
}

// UserView is the projected shape of a user profile.
type UserView struct {
	model.User
	SoundCount    int              `json:"sound_count"`
	FollowerCount int              `json:"follower_count"`
	Sounds        []model.Sound    `json:"sounds,omitempty"`
	Albums        []model.Album    `json:"albums,omitempty"`
	Playlists     []model.Playlist `json:"playlists,omitempty"`
}

// Assembler composes projections from the repositories.
type Assembler struct {
	sounds           repository.SoundRepository
	albums           repository.AlbumRepository
	playlists        repository.PlaylistRepository
	soundLikes       repository.LikeRepository
	playlistLikes    repository.LikeRepository
	soundComments    repository.CommentRepository
	playlistComments repository.CommentRepository
	userFollows      repository.FollowRepository
	playlistFollows  repository.FollowRepository
}

func NewAssembler(
	sounds repository.SoundRepository,
	albums repository.AlbumRepository,
	playlists repository.PlaylistRepository,
	soundLikes, playlistLikes repository.LikeRepository,
	soundComments, playlistComments repository.CommentRepository,
	userFollows, playlistFollows repository.FollowRepository,
) *Assembler {
	return &Assembler{
		sounds:           sounds,
		albums:           albums,
		playlists:        playlists,
		soundLikes:       soundLikes,
		playlistLikes:    playlistLikes,
		soundComments:    soundComments,
		playlistComments: playlistComments,
		userFollows:      userFollows,
		playlistFollows:  playlistFollows,
	}
}

// Sound projects a single sound.
func (a *Assembler) Sound(ctx context.Context, s *model.Sound, kind Kind) (*SoundView, error) {
	likeCount, err := a.soundLikes.CountByTarget(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("count sound likes: %w", err)
	}

	commentCount, err := a.soundComments.CountByTarget(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("count sound comments: %w", err)
	}

	v := &SoundView{Sound: *s, LikeCount: likeCount, CommentCount: commentCount}

	if kind == Complete {
		comments, err := a.soundComments.ListByTarget(ctx, s.ID)
		if err != nil {
			return nil, fmt.Errorf("list sound comments: %w", err)
		}
		v.Comments = comments
	}

	return v, nil
}

// Sounds projects a list; list routes always use the minimal shape.
func (a *Assembler) Sounds(ctx context.Context, sounds []model.Sound) ([]SoundView, error) {
	views := make([]SoundView, 0, len(sounds))
	for i := range sounds {
		v, err := a.Sound(ctx, &sounds[i], Minimal)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Album projects a single album.
func (a *Assembler) Album(ctx context.Context, al *model.Album, kind Kind) (*AlbumView, error) {
	soundCount, err := a.sounds.CountByAlbum(ctx, al.ID)
	if err != nil {
		return nil, fmt.Errorf("count album sounds: %w", err)
	}

	v := &AlbumView{Album: *al, SoundCount: soundCount}

	if kind == Complete {
		sounds, err := a.sounds.ListByAlbum(ctx, al.ID)
		if err != nil {
			return nil, fmt.Errorf("list album sounds: %w", err)
		}
		v.Sounds = sounds
	}

	return v, nil
}

func (a *Assembler) Albums(ctx context.Context, albums []model.Album) ([]AlbumView, error) {
	views := make([]AlbumView, 0, len(albums))
	for i := range albums {
		v, err := a.Album(ctx, &albums[i], Minimal)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Playlist projects a single playlist.
func (a *Assembler) Playlist(ctx context.Context, p *model.Playlist, kind Kind) (*PlaylistView, error) {
	soundCount, err := a.playlists.CountSounds(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("count playlist sounds: %w", err)
	}

	likeCount, err := a.playlistLikes.CountByTarget(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("count playlist likes: %w", err)
	}

	commentCount, err := a.playlistComments.CountByTarget(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("count playlist comments: %w", err)
	}

	followerCount, err := a.playlistFollows.CountFollowers(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("count playlist followers: %w", err)
	}

	v := &PlaylistView{
		Playlist:      *p,
		SoundCount:    soundCount,
		LikeCount:     likeCount,
		CommentCount:  commentCount,
		FollowerCount: followerCount,
	}

	if kind == Complete {
		sounds, err := a.sounds.ListByPlaylist(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("list playlist sounds: %w", err)
		}
		v.Sounds = sounds

		comments, err := a.playlistComments.ListByTarget(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("list playlist comments: %w", err)
		}
		v.Comments = comments
	}

	return v, nil
}

func (a *Assembler) Playlists(ctx context.Context, playlists []model.Playlist) ([]PlaylistView, error) {
	views := make([]PlaylistView, 0, len(playlists))
	for i := range playlists {
		v, err := a.Playlist(ctx, &playlists[i], Minimal)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// User projects a user profile. The self-profile route uses Complete.
func (a *Assembler) User(ctx context.Context, u *model.User, kind Kind) (*UserView, error) {
	soundCount, err := a.sounds.CountByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("count user sounds: %w", err)
	}

	followerCount, err := a.userFollows.CountFollowers(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("count user followers: %w", err)
	}

	v := &UserView{User: *u, SoundCount: soundCount, FollowerCount: followerCount}

	if kind == Complete {
		sounds, err := a.sounds.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("list user sounds: %w", err)
		}
		v.Sounds = sounds

		albums, err := a.albums.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("list user albums: %w", err)
		}
		v.Albums = albums

		playlists, err := a.playlists.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("list user playlists: %w", err)
		}
		v.Playlists = playlists
	}

	return v, nil
}
