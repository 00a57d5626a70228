package authz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiV1Prefix     = "/api/v1"
	casbinTableName = "casbin_rule"
	adminSubjectFmt = "admin:%d"
	rolePrefix      = "role:"
	// roleAnchor keeps empty roles alive as grouping rules; casbin has no
	// standalone role entity, so every role links to this sentinel.
	roleAnchor = "role:__anchor__"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

var errServiceUnavailable = fmt.Errorf("authz service unavailable")

// Policy one allow rule: subject may perform action on object
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// Service wraps a synced casbin enforcer with role and policy management
// for back-office accounts.
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService creates the authorization service backed by the given database
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("authz db is nil")
	}

	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}

	return &Service{enforcer: enforcer}, nil
}

func (s *Service) ready() error {
	if s == nil || s.enforcer == nil {
		return errServiceUnavailable
	}
	return nil
}

// afterWrite runs after mutating calls. Autosave persists each mutation, so
// there is nothing left to flush; the hook stays as the single place to add
// cross-instance invalidation later.
func (s *Service) afterWrite() error {
	return s.ready()
}

// Enforcer exposes the underlying enforcer to the permission catalog handler
func (s *Service) Enforcer() *casbin.SyncedEnforcer {
	if s == nil {
		return nil
	}
	return s.enforcer
}

// Enforce runs an authorization check
func (s *Service) Enforce(sub, obj, act string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.enforcer.Enforce(strings.TrimSpace(sub), NormalizeObject(obj), NormalizeAction(act))
}

// EnforceAdmin runs an authorization check for an admin ID
func (s *Service) EnforceAdmin(adminID uint, obj, act string) (bool, error) {
	return s.Enforce(SubjectForAdmin(adminID), obj, act)
}

// ReloadPolicy reloads policies from storage
func (s *Service) ReloadPolicy() error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.enforcer.LoadPolicy()
}

// EnsureRole creates the role when missing and returns its canonical name
func (s *Service) EnsureRole(role string) (string, error) {
	name, err := NormalizeRole(role)
	if err != nil {
		return "", err
	}
	if name == roleAnchor {
		return "", fmt.Errorf("reserved role is not allowed")
	}
	if err := s.ready(); err != nil {
		return "", err
	}

	exists, err := s.enforcer.HasNamedGroupingPolicy("g", name, roleAnchor)
	if err != nil {
		return "", fmt.Errorf("check role failed: %w", err)
	}
	if exists {
		return name, nil
	}
	added, err := s.enforcer.AddNamedGroupingPolicy("g", name, roleAnchor)
	if err != nil {
		return "", fmt.Errorf("create role failed: %w", err)
	}
	if added {
		if err := s.afterWrite(); err != nil {
			return "", err
		}
	}
	return name, nil
}

// ListRoles lists every known role name, sorted
func (s *Service) ListRoles() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredNamedGroupingPolicy("g", 0)
	if err != nil {
		return nil, fmt.Errorf("list roles failed: %w", err)
	}

	// role names show up on either side of a grouping rule: as the member
	// (role -> anchor, role -> parent) or as the target of an inheritance
	seen := make(map[string]struct{})
	collect := func(value string) {
		if strings.HasPrefix(value, rolePrefix) && value != roleAnchor {
			seen[value] = struct{}{}
		}
	}
	for _, rule := range rules {
		if len(rule) >= 1 {
			collect(rule[0])
		}
		if len(rule) >= 2 {
			collect(rule[1])
		}
	}

	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles, nil
}

// DeleteRole removes a role, its policies, and both link directions
func (s *Service) DeleteRole(role string) error {
	name, err := NormalizeRole(role)
	if err != nil {
		return err
	}
	if name == roleAnchor {
		return fmt.Errorf("reserved role is not allowed")
	}
	if err := s.ready(); err != nil {
		return err
	}

	changed := false
	if removed, err := s.enforcer.RemoveFilteredPolicy(0, name); err != nil {
		return fmt.Errorf("remove role policy failed: %w", err)
	} else if removed {
		changed = true
	}
	if removed, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, name); err != nil {
		return fmt.Errorf("remove role link failed: %w", err)
	} else if removed {
		changed = true
	}
	if removed, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 1, name); err != nil {
		return fmt.Errorf("remove role incoming link failed: %w", err)
	} else if removed {
		changed = true
	}

	if changed {
		return s.afterWrite()
	}
	return nil
}

// GrantRolePolicy grants a policy to a role, creating the role when missing
func (s *Service) GrantRolePolicy(role, object, action string) error {
	name, err := s.EnsureRole(role)
	if err != nil {
		return err
	}
	obj := NormalizeObject(object)
	act := NormalizeAction(action)
	if act == "" {
		return fmt.Errorf("action is required")
	}

	added, err := s.enforcer.AddPolicy(name, obj, act)
	if err != nil {
		return fmt.Errorf("grant policy failed: %w", err)
	}
	if added {
		return s.afterWrite()
	}
	return nil
}

// RevokeRolePolicy revokes a policy from a role
func (s *Service) RevokeRolePolicy(role, object, action string) error {
	name, err := NormalizeRole(role)
	if err != nil {
		return err
	}
	obj := NormalizeObject(object)
	act := NormalizeAction(action)
	if act == "" {
		return fmt.Errorf("action is required")
	}
	if err := s.ready(); err != nil {
		return err
	}

	removed, err := s.enforcer.RemovePolicy(name, obj, act)
	if err != nil {
		return fmt.Errorf("revoke policy failed: %w", err)
	}
	if removed {
		return s.afterWrite()
	}
	return nil
}

// GetRolePolicies lists the direct policies of a role
func (s *Service) GetRolePolicies(role string) ([]Policy, error) {
	name, err := NormalizeRole(role)
	if err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	rules, err := s.enforcer.GetFilteredPolicy(0, name)
	if err != nil {
		return nil, fmt.Errorf("get role policies failed: %w", err)
	}
	return toPolicies(rules), nil
}

// SetAdminRoles replaces the role set of an admin
func (s *Service) SetAdminRoles(adminID uint, roles []string) error {
	if adminID == 0 {
		return fmt.Errorf("admin id is required")
	}
	if err := s.ready(); err != nil {
		return err
	}
	subject := SubjectForAdmin(adminID)

	if _, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, subject); err != nil {
		return fmt.Errorf("clear admin roles failed: %w", err)
	}
	for _, role := range roles {
		name, err := s.EnsureRole(role)
		if err != nil {
			return err
		}
		if _, err := s.enforcer.AddNamedGroupingPolicy("g", subject, name); err != nil {
			return fmt.Errorf("assign admin role failed: %w", err)
		}
	}
	return s.afterWrite()
}

// GetAdminRoles lists the roles of an admin, sorted
func (s *Service) GetAdminRoles(adminID uint) ([]string, error) {
	if adminID == 0 {
		return nil, fmt.Errorf("admin id is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	assigned, err := s.enforcer.GetRolesForUser(SubjectForAdmin(adminID))
	if err != nil {
		return nil, fmt.Errorf("get admin roles failed: %w", err)
	}

	roles := make([]string, 0, len(assigned))
	for _, role := range assigned {
		if !strings.HasPrefix(role, rolePrefix) || role == roleAnchor {
			continue
		}
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles, nil
}

// GetAdminPolicies lists the effective policies of an admin: the rules of the
// assigned roles plus any rules bound to the admin subject directly
func (s *Service) GetAdminPolicies(adminID uint) ([]Policy, error) {
	if adminID == 0 {
		return nil, fmt.Errorf("admin id is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	subject := SubjectForAdmin(adminID)

	dedup := map[string]Policy{}
	merge := func(rules [][]string) {
		for _, item := range toPolicies(rules) {
			dedup[item.Subject+"|"+item.Object+"|"+item.Action] = item
		}
	}

	direct, err := s.enforcer.GetFilteredPolicy(0, subject)
	if err != nil {
		return nil, fmt.Errorf("get direct policies failed: %w", err)
	}
	merge(direct)

	roles, err := s.GetAdminRoles(adminID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		rules, err := s.enforcer.GetFilteredPolicy(0, role)
		if err != nil {
			return nil, fmt.Errorf("get role policies failed: %w", err)
		}
		merge(rules)
	}

	result := make([]Policy, 0, len(dedup))
	for _, item := range dedup {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Subject != result[j].Subject {
			return result[i].Subject < result[j].Subject
		}
		if result[i].Object != result[j].Object {
			return result[i].Object < result[j].Object
		}
		return result[i].Action < result[j].Action
	})
	return result, nil
}

func toPolicies(rules [][]string) []Policy {
	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		policies = append(policies, Policy{
			Subject: strings.TrimSpace(rule[0]),
			Object:  NormalizeObject(rule[1]),
			Action:  NormalizeAction(rule[2]),
		})
	}
	return policies
}

// SubjectForAdmin builds the enforcement subject for an admin
func SubjectForAdmin(adminID uint) string {
	return fmt.Sprintf(adminSubjectFmt, adminID)
}

// NormalizeRole canonicalizes a role name: trims, replaces spaces with
// underscores, and prepends the role prefix
func NormalizeRole(role string) (string, error) {
	name := strings.TrimSpace(role)
	if name == "" {
		return "", fmt.Errorf("role is required")
	}
	name = strings.ReplaceAll(name, " ", "_")
	if !strings.HasPrefix(name, rolePrefix) {
		name = rolePrefix + name
	}
	if len(name) <= len(rolePrefix) {
		return "", fmt.Errorf("role is required")
	}
	return name, nil
}

// NormalizeObject canonicalizes an authorization resource path: ensures a
// leading slash and strips the API version prefix
func NormalizeObject(object string) string {
	path := strings.TrimSpace(object)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if strings.HasPrefix(path, apiV1Prefix+"/") {
		return strings.TrimPrefix(path, apiV1Prefix)
	}
	if path == apiV1Prefix {
		return "/"
	}
	return path
}

// NormalizeAction canonicalizes an authorization action to upper case
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
