package userpanel

// Panel ids.
const (
	PanelEditProfile   = "editProfileModal"
	PanelDeleteProfile = "deleteProfileModal"
	PanelAuth          = "authPanel"
	PanelForgot        = "forgotPanel"
)

// Element ids shared by the server renderer and the browser binder.
const (
	IDEditOpen      = "editProfileOpen"
	IDEditClose     = "editProfileClose"
	IDEditCancel    = "editProfileCancel"
	IDEditForm      = "editProfileForm"
	IDDeleteOpen    = "deleteProfileOpen"
	IDDeleteClose   = "deleteProfileClose"
	IDDeleteCancel  = "deleteProfileCancel"
	IDDeleteConfirm = "deleteProfileConfirm"

	IDRegisterToggle = "registerToggle"
	IDLoginToggle    = "loginToggle"
	IDWelcomeText    = "welcomeText"
	IDForgotLink     = "forgotLink"
	IDForgotBack     = "forgotBack"
	IDAdminToggle    = "adminToggle"
	IDAdminPasscode  = "adminPasscodeField"
)

// Form field names of the edit-profile form.
const (
	FieldEmail           = "email"
	FieldConfirmEmail    = "confirmEmail"
	FieldNickname        = "nickname"
	FieldConfirmNickname = "confirmNickname"
)

// Classes toggled on the auth container.
const (
	ClassRegisterActive = "active"
	ClassForgotActive   = "forgot-active"
)

// BackPolicyAttr carries the configured BackPolicy from the server to the binder.
const BackPolicyAttr = "data-back-policy"
