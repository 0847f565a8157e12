package access

import "testing"

// ownedResource is a minimal Resource for guard tests.
type ownedResource struct {
	owner int64
}

func (r ownedResource) OwnerID() int64 { return r.owner }

func TestGuard_OwnedResources(t *testing.T) {
	guard := NewGuard()

	owner := &Identity{UserID: 1}
	stranger := &Identity{UserID: 2}
	admin := &Identity{UserID: 3, IsAdmin: true}
	res := ownedResource{owner: 1}

	kinds := []Kind{KindSound, KindAlbum, KindPlaylist, KindComment}

	tests := []struct {
		name      string
		op        Operation
		id        *Identity
		res       Resource
		wantAllow bool
	}{
		{"anonymous read", OpRead, nil, res, true},
		{"anonymous create denied", OpCreate, nil, nil, false},
		{"authenticated create", OpCreate, stranger, nil, true},
		{"owner update", OpUpdate, owner, res, true},
		{"owner delete", OpDelete, owner, res, true},
		{"stranger update denied", OpUpdate, stranger, res, false},
		{"stranger delete denied", OpDelete, stranger, res, false},
		{"admin update", OpUpdate, admin, res, true},
		{"admin delete", OpDelete, admin, res, true},
		{"nil resource update denied", OpUpdate, owner, nil, false},
		{"unresolved owner denied", OpUpdate, owner, ownedResource{owner: 0}, false},
	}

	for _, kind := range kinds {
		for _, tt := range tests {
			t.Run(string(kind)+"/"+tt.name, func(t *testing.T) {
				err := guard.Check(kind, tt.op, tt.id, tt.res)
				if tt.wantAllow && err != nil {
					t.Errorf("Check = %v, want allow", err)
				}
				if !tt.wantAllow && err != ErrDenied {
					t.Errorf("Check = %v, want ErrDenied", err)
				}
			})
		}
	}
}

func TestGuard_UserSelfEdit(t *testing.T) {
	guard := NewGuard()

	self := &Identity{UserID: 7}
	other := &Identity{UserID: 8}
	admin := &Identity{UserID: 9, IsAdmin: true}
	target := ownedResource{owner: 7} // User.OwnerID returns its own ID

	if err := guard.Check(KindUser, OpUpdate, self, target); err != nil {
		t.Errorf("self update denied: %v", err)
	}
	if err := guard.Check(KindUser, OpUpdate, other, target); err != ErrDenied {
		t.Errorf("edit of another user allowed: %v", err)
	}
	if err := guard.Check(KindUser, OpDelete, admin, target); err != nil {
		t.Errorf("admin delete denied: %v", err)
	}
	// Registration needs no identity.
	if err := guard.Check(KindUser, OpCreate, nil, nil); err != nil {
		t.Errorf("anonymous registration denied: %v", err)
	}
}

func TestGuard_LookupEntities(t *testing.T) {
	guard := NewGuard()

	user := &Identity{UserID: 1}
	admin := &Identity{UserID: 2, IsAdmin: true}
	unowned := ownedResource{owner: 0}

	// Artist creation is open to any authenticated caller; mutation is admin-only.
	if err := guard.Check(KindArtist, OpCreate, user, nil); err != nil {
		t.Errorf("authenticated artist create denied: %v", err)
	}
	if err := guard.Check(KindArtist, OpUpdate, user, unowned); err != ErrDenied {
		t.Errorf("non-admin artist update allowed: %v", err)
	}
	if err := guard.Check(KindArtist, OpDelete, admin, unowned); err != nil {
		t.Errorf("admin artist delete denied: %v", err)
	}

	// Styles are read-only to ordinary users entirely.
	if err := guard.Check(KindStyle, OpCreate, user, nil); err != ErrDenied {
		t.Errorf("non-admin style create allowed: %v", err)
	}
	if err := guard.Check(KindStyle, OpCreate, admin, nil); err != nil {
		t.Errorf("admin style create denied: %v", err)
	}
	if err := guard.Check(KindStyle, OpRead, nil, nil); err != nil {
		t.Errorf("anonymous style read denied: %v", err)
	}
}

func TestCombinators(t *testing.T) {
	id := &Identity{UserID: 1}
	res := ownedResource{owner: 1}

	if !AnyOf(Admin, Owner)(id, res) {
		t.Error("AnyOf(Admin, Owner) should pass for owner")
	}
	if AnyOf(Admin)(id, res) {
		t.Error("AnyOf(Admin) should fail for non-admin")
	}
	if !AllOf(Authenticated, Owner)(id, res) {
		t.Error("AllOf(Authenticated, Owner) should pass for owner")
	}
	if AllOf(Authenticated, Admin)(id, res) {
		t.Error("AllOf(Authenticated, Admin) should fail for non-admin")
	}
	if AllOf()(nil, nil) != true {
		t.Error("empty AllOf should pass")
	}
	if AnyOf()(id, res) != false {
		t.Error("empty AnyOf should fail")
	}
}
