package userpanel

// ProfileEdit is the edit-profile form as submitted. The validate tags are
// enforced server side only; the confirmation pairs are checked on both.
type ProfileEdit struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	ConfirmEmail    string `json:"confirmEmail"`
	Nickname        string `json:"nickname" validate:"required,min=2,max=32"`
	ConfirmNickname string `json:"confirmNickname"`
}

// CheckProfileEdit compares each confirmation pair byte for byte, email
// first. It returns a *FieldMismatch for the first pair that differs.
func CheckProfileEdit(p ProfileEdit) error {
	if p.Email != p.ConfirmEmail {
		return &FieldMismatch{Field: FieldEmail}
	}
	if p.Nickname != p.ConfirmNickname {
		return &FieldMismatch{Field: FieldNickname}
	}
	return nil
}

// ProfileUpdater applies a validated profile edit.
type ProfileUpdater interface {
	UpdateProfile(p ProfileEdit) error
}

// ProfileDeleter removes the current profile.
type ProfileDeleter interface {
	DeleteProfile() error
}

// Notifier surfaces a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

type UpdaterFunc func(p ProfileEdit) error

func (f UpdaterFunc) UpdateProfile(p ProfileEdit) error { return f(p) }

type DeleterFunc func() error

func (f DeleterFunc) DeleteProfile() error { return f() }

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }
