// Package authz decides whether an account type may perform an account
// management operation on a target account type.
//
// The rule table is fixed:
//
//	superadmin → allow everything
//	admin      → allow on admin and secritary targets, deny otherwise
//	secritary  → deny
//	patient    → deny
//
// Decisions are a pure function of their inputs and safe for concurrent use.
package authz

import "github.com/shs/account-service/internal/core/domain"

// Operation is an account management action.
type Operation string

const (
	OpCreate Operation = "create"
	OpGet    Operation = "get"
	OpList   Operation = "list"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Decision is the outcome of an authorization check.
type Decision bool

const (
	Deny  Decision = false
	Allow Decision = true
)

func (d Decision) String() string {
	if d {
		return "allow"
	}
	return "deny"
}

// Authorize evaluates the rule table for caller acting with op on target.
func Authorize(caller domain.AccountType, op Operation, target domain.AccountType) Decision {
	if !op.valid() {
		return Deny
	}
	switch {
	case caller == domain.AccountTypeSuperAdmin:
		return Allow
	case caller == domain.AccountTypeAdmin:
		return Decision(target.IsManageable())
	default:
		return Deny
	}
}

// CanManageAccounts reports whether caller may reach the account management
// surface at all, independent of any target.
func CanManageAccounts(caller domain.AccountType) bool {
	return caller.Level() >= domain.PermissionLevelAdmin
}

// Check is Authorize returning domain.ErrPermissionDenied on Deny.
func Check(caller domain.AccountType, op Operation, target domain.AccountType) error {
	if Authorize(caller, op, target) == Deny {
		return domain.ErrPermissionDenied
	}
	return nil
}

func (op Operation) valid() bool {
	switch op {
	case OpCreate, OpGet, OpList, OpUpdate, OpDelete:
		return true
	}
	return false
}
