package perm

import "testing"

func TestResolveEntityRole_CeilingClamp(t *testing.T) {
	cases := []struct {
		name        string
		project     Role
		creator     Role
		grants      []Role
		wantRole    Role
		wantClamped bool
	}{
		{"no project role gates everything", "", RoleEditor, []Role{RoleOwner}, "", false},
		{"grant above ceiling clamps", RoleViewer, "", []Role{RoleEditor}, RoleViewer, true},
		{"creator default clamps to viewer project", RoleViewer, CreatorDefaultRole, nil, RoleViewer, true},
		{"grant below ceiling keeps project role", RoleEditor, "", []Role{RoleViewer}, RoleEditor, false},
		{"owner project passes owner grant through", RoleOwner, "", []Role{RoleOwner}, RoleOwner, false},
		{"project role alone", RoleCommenter, "", nil, RoleCommenter, false},
	}
	for _, tc := range cases {
		d := ResolveEntityRole(tc.project, tc.creator, tc.grants...)
		if d.Role != tc.wantRole || d.Clamped != tc.wantClamped {
			t.Fatalf("%s: got %+v, want role=%s clamped=%v", tc.name, d, tc.wantRole, tc.wantClamped)
		}
	}
}

func TestResolveEntityRole_NeverExceedsCeiling(t *testing.T) {
	all := []Role{RoleViewer, RoleCommenter, RoleEditor, RoleOwner}
	for _, project := range all {
		for _, creator := range append([]Role{""}, all...) {
			for _, grant := range all {
				d := ResolveEntityRole(project, creator, grant)
				if d.Role.Rank() > project.Rank() {
					t.Fatalf("final %s exceeds ceiling %s (creator=%s grant=%s)", d.Role, project, creator, grant)
				}
			}
		}
	}
}

func TestMaxRole(t *testing.T) {
	if got := MaxRole(RoleViewer, RoleEditor, RoleCommenter); got != RoleEditor {
		t.Fatalf("want editor, got %s", got)
	}
	if got := MaxRole(); got != "" {
		t.Fatalf("want empty, got %s", got)
	}
}
