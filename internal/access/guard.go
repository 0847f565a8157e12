// Package access decides whether an acting identity may perform an operation
// on a resource. Rules are plain predicates composed per resource kind in an
// explicit table, evaluated fail-closed: anything the table does not allow is
// denied.
package access

import "errors"

// ErrDenied is returned for every denial. It carries no detail about whether
// the resource exists, so callers cannot distinguish "forbidden" from
// "not yours".
var ErrDenied = errors.New("forbidden")

// Identity is the acting caller resolved by the transport layer. A nil
// *Identity means an unauthenticated request.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

// Resource is anything with a resolvable owning user. OwnerID returning 0
// means ownership cannot be resolved, which never satisfies the owner rule.
type Resource interface {
	OwnerID() int64
}

// Operation is the kind of access being requested.
type Operation int

const (
	OpCreate Operation = iota
	OpRead
	OpUpdate
	OpDelete
)

// Kind identifies the resource type being checked.
type Kind string

const (
	KindUser     Kind = "user"
	KindSound    Kind = "sound"
	KindAlbum    Kind = "album"
	KindArtist   Kind = "artist"
	KindPlaylist Kind = "playlist"
	KindStyle    Kind = "style"
	KindComment  Kind = "comment"
)

// Rule is a predicate over (identity, resource).
type Rule func(id *Identity, res Resource) bool

// Anyone allows every caller, authenticated or not.
func Anyone(*Identity, Resource) bool { return true }

// Authenticated requires a resolved identity.
func Authenticated(id *Identity, _ Resource) bool {
	return id != nil && id.UserID != 0
}

// Admin requires an identity with administrator privilege.
func Admin(id *Identity, _ Resource) bool {
	return id != nil && id.UserID != 0 && id.IsAdmin
}

// Owner requires the identity to be the resource's owning user. Unresolvable
// identity or ownership denies.
func Owner(id *Identity, res Resource) bool {
	if id == nil || id.UserID == 0 || res == nil {
		return false
	}
	owner := res.OwnerID()
	return owner != 0 && owner == id.UserID
}

// AnyOf passes when at least one rule passes.
func AnyOf(rules ...Rule) Rule {
	return func(id *Identity, res Resource) bool {
		for _, r := range rules {
			if r(id, res) {
				return true
			}
		}
		return false
	}
}

// AllOf passes when every rule passes.
func AllOf(rules ...Rule) Rule {
	return func(id *Identity, res Resource) bool {
		for _, r := range rules {
			if !r(id, res) {
				return false
			}
		}
		return true
	}
}

// ownerOrAdmin is the standard mutation rule for user-owned resources.
var ownerOrAdmin = AllOf(Authenticated, AnyOf(Owner, Admin))

// Guard evaluates the rule table. Missing entries deny.
type Guard struct {
	rules map[Kind]map[Operation]Rule
}

// NewGuard builds the default rule table:
//
//   - reads are public for every content type
//   - creates need an authenticated caller (styles: admin only)
//   - updates/deletes need owner-or-admin; artists and styles, having no
//     owner, are admin-only
func NewGuard() *Guard {
	owned := map[Operation]Rule{
		OpCreate: Authenticated,
		OpRead:   Anyone,
		OpUpdate: ownerOrAdmin,
		OpDelete: ownerOrAdmin,
	}

	return &Guard{rules: map[Kind]map[Operation]Rule{
		KindUser: {
			OpCreate: Anyone, // registration
			OpRead:   Anyone,
			OpUpdate: ownerOrAdmin, // self-edit only
			OpDelete: ownerOrAdmin,
		},
		KindSound:    owned,
		KindAlbum:    owned,
		KindPlaylist: owned,
		KindComment:  owned,
		KindArtist: {
			OpCreate: Authenticated,
			OpRead:   Anyone,
			OpUpdate: Admin,
			OpDelete: Admin,
		},
		KindStyle: {
			OpCreate: Admin,
			OpRead:   Anyone,
			OpUpdate: Admin,
			OpDelete: Admin,
		},
	}}
}

// Check returns nil when the identity may perform op on the resource, and
// ErrDenied otherwise. res may be nil for operations that have no instance
// (create, list); owner rules then fail closed.
func (g *Guard) Check(kind Kind, op Operation, id *Identity, res Resource) error {
	ops, ok := g.rules[kind]
	if !ok {
		return ErrDenied
	}
	rule, ok := ops[op]
	if !ok {
		return ErrDenied
	}
	if !rule(id, res) {
		return ErrDenied
	}
	return nil
}
