package models

// Session is the login and authorization state of the running instance.
// IsAdmin and ActiveMemberID only carry authority while IsLogged is true.
type Session struct {
	IsLogged       bool
	IsAdmin        bool
	ActiveMemberID string
}

// AdminView reports whether admin-only views may be shown.
func (s Session) AdminView() bool {
	return s.IsLogged && s.IsAdmin
}

// CanManage reports whether the session may act on memberID's profile:
// admins may act on anyone, members only on themselves.
func (s Session) CanManage(memberID string) bool {
	if !s.IsLogged {
		return false
	}
	return s.IsAdmin || memberID == s.ActiveMemberID
}
