package model

import (
	"errors"
	"time"
)

// Follow is a directed edge from an actor to a target (user or playlist).
// The pair is unique; a second follow of the same target is rejected.
type Follow struct {
	FollowerID int64     `db:"follower_id" json:"follower_id"`
	TargetID   int64     `db:"target_id" json:"target_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Like is a directed edge from an actor to a sound or playlist, unique per
// (actor, target) pair.
type Like struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	TargetID  int64     `db:"target_id" json:"target_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrAlreadyFollowing = errors.New("already following this target")
	ErrNotFollowing     = errors.New("not following this target")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")

	ErrAlreadyLiked = errors.New("already liked this target")
	ErrNotLiked     = errors.New("not liked this target")
)
