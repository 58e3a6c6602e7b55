package iban

import "strings"

// Role is a format-mask symbol naming what a character position holds.
type Role byte

// Format-mask role symbols. RoleZero marks a literal zero and is not a field.
const (
	RoleCheckDigits        Role = 'k'
	RoleBankCode           Role = 'b'
	RoleBranchCode         Role = 's'
	RoleAccountPrefix      Role = 'p'
	RoleAccountNumber      Role = 'c'
	RoleAccountCheckDigits Role = 'x'
	RoleZero               Role = '0'
	RoleCurrency           Role = 'm'
	RoleAccountType        Role = 't'
	RoleOwnerNumber        Role = 'n'
	RoleBICBankCode        Role = 'q'
)

// span returns the substring of value covering the first through the last
// occurrence of role in format, inclusive. Symbols of other roles between the
// two ends are included. It returns "" when role does not occur.
func span(value, format string, role Role) string {
	first := strings.IndexByte(format, byte(role))
	if first < 0 {
		return ""
	}
	last := strings.LastIndexByte(format, byte(role))
	if last >= len(value) {
		return ""
	}
	return value[first : last+1]
}
