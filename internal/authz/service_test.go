package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceAdminWithRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("catalog_editor", "/admin/scents/:id", "PUT"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if err := svc.SetAdminRoles(1, []string{"catalog_editor"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	allow, err := svc.EnforceAdmin(1, "/api/v1/admin/scents/7", "put")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceAdmin(1, "/api/v1/admin/scents/7", "DELETE")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}
}

func TestSetAdminRolesReplacesAssignment(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("catalog_editor", "/admin/products", "GET"); err != nil {
		t.Fatalf("grant catalog policy failed: %v", err)
	}
	if err := svc.GrantRolePolicy("order_desk", "/admin/orders", "GET"); err != nil {
		t.Fatalf("grant order policy failed: %v", err)
	}

	if err := svc.SetAdminRoles(2, []string{"catalog_editor"}); err != nil {
		t.Fatalf("set first role failed: %v", err)
	}
	if err := svc.SetAdminRoles(2, []string{"order_desk"}); err != nil {
		t.Fatalf("set second role failed: %v", err)
	}

	roles, err := svc.GetAdminRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:order_desk" {
		t.Fatalf("roles want [role:order_desk], got=%v", roles)
	}

	allow, err := svc.EnforceAdmin(2, "/admin/products", "GET")
	if err != nil {
		t.Fatalf("enforce old role failed: %v", err)
	}
	if allow {
		t.Fatalf("expected old role permission removed")
	}
	allow, err = svc.EnforceAdmin(2, "/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce new role failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected new role permission granted")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/colors", want: "/admin/colors"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	wantRoles := map[string]bool{
		"role:readonly_auditor": true,
		"role:operations":       true,
		"role:support":          true,
	}
	for _, role := range roles {
		delete(wantRoles, role)
	}
	if len(wantRoles) != 0 {
		t.Fatalf("builtin roles missing: %v", wantRoles)
	}

	if err := svc.SetAdminRoles(3, []string{"operations"}); err != nil {
		t.Fatalf("set operations role failed: %v", err)
	}
	if err := svc.SetAdminRoles(4, []string{"support"}); err != nil {
		t.Fatalf("set support role failed: %v", err)
	}

	// operations manages the catalog and inherits auditor reads
	if allow, err := svc.EnforceAdmin(3, "/admin/products/9", "PUT"); err != nil || !allow {
		t.Fatalf("expected operations allowed to edit products, allow=%v err=%v", allow, err)
	}
	if allow, err := svc.EnforceAdmin(3, "/admin/orders/9", "GET"); err != nil || !allow {
		t.Fatalf("expected operations inherited read on orders, allow=%v err=%v", allow, err)
	}
	if allow, err := svc.EnforceAdmin(3, "/admin/orders/9/status", "PATCH"); err != nil || allow {
		t.Fatalf("expected operations denied order status writes, allow=%v err=%v", allow, err)
	}

	// support handles orders and users but cannot touch the catalog
	if allow, err := svc.EnforceAdmin(4, "/admin/orders/9/status", "PATCH"); err != nil || !allow {
		t.Fatalf("expected support allowed to update order status, allow=%v err=%v", allow, err)
	}
	if allow, err := svc.EnforceAdmin(4, "/admin/products/9", "PUT"); err != nil || allow {
		t.Fatalf("expected support denied product writes, allow=%v err=%v", allow, err)
	}
}
