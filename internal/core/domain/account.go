package domain

import "time"

// AccountType is the role an account holds. It is fixed at creation.
type AccountType string

const (
	AccountTypeSuperAdmin AccountType = "superadmin"
	AccountTypeAdmin      AccountType = "admin"
	AccountTypeSecritary  AccountType = "secritary"
	AccountTypePatient    AccountType = "patient"
)

// PermissionLevel is the numeric encoding of an AccountType used for ordering.
type PermissionLevel uint

const (
	PermissionLevelNone PermissionLevel = iota
	PermissionLevelBasic
	PermissionLevelAdmin
	PermissionLevelSuperAdmin
)

var permissionLevels = map[AccountType]PermissionLevel{
	AccountTypeSuperAdmin: PermissionLevelSuperAdmin,
	AccountTypeAdmin:      PermissionLevelAdmin,
	AccountTypeSecritary:  PermissionLevelBasic,
	AccountTypePatient:    PermissionLevelBasic,
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	_, ok := permissionLevels[t]
	return ok
}

// Level returns the permission level for t; unknown types map to PermissionLevelNone.
func (t AccountType) Level() PermissionLevel {
	return permissionLevels[t]
}

// ManageableTypes are the account types exposed through the account
// management surface (create and list).
var ManageableTypes = []AccountType{AccountTypeAdmin, AccountTypeSecritary}

// IsManageable reports whether t belongs to ManageableTypes.
func (t AccountType) IsManageable() bool {
	return t == AccountTypeAdmin || t == AccountTypeSecritary
}

// Account models an operator or patient able to log in.
type Account struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	DisplayName  string          `json:"display_name"`
	PasswordHash string          `json:"-"`
	Type         AccountType     `json:"type"`
	Permissions  PermissionLevel `json:"permissions"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AccountUpdate carries the mutable fields of an account. A nil field is left
// unchanged; Password holds the already hashed secret.
type AccountUpdate struct {
	Username     *string
	DisplayName  *string
	PasswordHash *string
}

// Empty reports whether the update touches no field.
func (u AccountUpdate) Empty() bool {
	return u.Username == nil && u.DisplayName == nil && u.PasswordHash == nil
}
