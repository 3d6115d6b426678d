package permission

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"revu/internal/domain/permission"
	"revu/internal/shared/logger"
)

var _ permission.Authorizer = (*Enforcer)(nil)

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
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// RoleMember is the default role granted to every registered account.
const RoleMember = "member"

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := casbinmodel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}

	if err := e.seedDefaultPolicies(); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Enforcer) seedDefaultPolicies() error {
	defaults := [][3]string{
		{RoleMember, permission.ResourceTicket, permission.ActionCreate},
		{RoleMember, permission.ResourceTicket, permission.ActionEdit},
		{RoleMember, permission.ResourceTicket, permission.ActionDelete},
		{RoleMember, permission.ResourceReview, permission.ActionCreate},
		{RoleMember, permission.ResourceReview, permission.ActionEdit},
		{RoleMember, permission.ResourceReview, permission.ActionDelete},
		{RoleMember, permission.ResourceReviewRequest, permission.ActionCreate},
	}

	for _, p := range defaults {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to persist seeded policies: %w", err)
	}

	return nil
}

// Can reports whether the user may perform the action on the resource.
func (e *Enforcer) Can(ctx context.Context, userID uint, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject(userID), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// GrantDefaultRole assigns the member role to a user. Called when an
// account is registered.
func (e *Enforcer) GrantDefaultRole(userID uint) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddRoleForUser(subject(userID), RoleMember); err != nil {
		e.logger.Errorw("failed to assign role", "error", err, "user_id", userID)
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return e.enforcer.SavePolicy()
}

func (e *Enforcer) AddPolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

func (e *Enforcer) RemovePolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role, resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}

func subject(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
