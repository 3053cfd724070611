package services

import (
	"workorders/internal/core/domain/model/account"
	"workorders/internal/pkg/errs"
)

// Operation names an access-controlled action in the system.
// Operations with no policy entry are open to any authenticated identity.
type Operation string

const (
	OpListUsers       Operation = "list users"
	OpGetProfile      Operation = "get own profile"
	OpListInstallers  Operation = "list installers"
	OpCreateInstaller Operation = "create installer"
	OpCreateOrder     Operation = "create order"
	OpUpdateOrder     Operation = "update order"
	OpListOrders      Operation = "list orders"
	OpListMyOrders    Operation = "list my orders"
	OpAssignInstaller Operation = "assign installer"
	OpChangeStatus    Operation = "change order status"
	OpAddComment      Operation = "add comment"
	OpListComments    Operation = "list comments"
	OpListHistory     Operation = "list order history"
)

// AccessPolicy is a domain service holding the static operation → allowed-roles
// table. The table is fixed at construction; there is no runtime configuration
// of permissions.
type AccessPolicy struct {
	allowed map[Operation][]account.Role
}

// NewAccessPolicy creates the policy with the system's fixed role table.
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{
		allowed: map[Operation][]account.Role{
			OpListUsers:       {account.Administrator},
			OpListInstallers:  {account.Administrator, account.Dispatcher, account.Installer},
			OpCreateInstaller: {account.Administrator},
			OpCreateOrder:     {account.Administrator, account.Dispatcher},
			OpUpdateOrder:     {account.Administrator, account.Dispatcher},
			OpAssignInstaller: {account.Administrator},
			OpChangeStatus:    {account.Installer},
			OpAddComment:      {account.Installer, account.Dispatcher, account.Administrator},
			// OpGetProfile, OpListOrders, OpListMyOrders, OpListComments, and
			// OpListHistory carry no entry: authentication alone suffices.
		},
	}
}

// Authorize checks whether the role may perform the operation. Operations
// without a policy entry are open to every authenticated role. Returns a
// PermissionDeniedError when the role is not in the operation's allowed set.
func (p *AccessPolicy) Authorize(role account.Role, op Operation) error {
	if err := role.Validate(); err != nil {
		return err
	}

	roles, restricted := p.allowed[op]
	if !restricted {
		return nil
	}
	for _, allowed := range roles {
		if role == allowed {
			return nil
		}
	}
	return errs.NewPermissionDeniedError(string(op), role.String())
}

// AllowedRoles returns the roles permitted to perform the operation and whether
// the operation is restricted at all. Useful for diagnostics and tests.
func (p *AccessPolicy) AllowedRoles(op Operation) ([]account.Role, bool) {
	roles, restricted := p.allowed[op]
	return roles, restricted
}
