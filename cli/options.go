package cli

// Options defines global flags shared by all jot commands.
type Options struct {
	BaseURL   string `short:"u" long:"base-url" env:"JOT_BASE_URL" description:"notes service base URL"`
	TokenPath string `short:"t" long:"token-path" env:"JOT_TOKEN_PATH" description:"session token file"`
	Timeout   int    `long:"timeout" env:"JOT_TIMEOUT" description:"request timeout in seconds"`

	Register registerCmd `command:"register" description:"create an account"`
	Login    loginCmd    `command:"login" description:"sign in and store the session token"`
	Logout   logoutCmd   `command:"logout" description:"forget the stored session token"`
	List     listCmd     `command:"list" description:"list notes, newest first"`
	Add      addCmd      `command:"add" description:"add a note"`
	Edit     editCmd     `command:"edit" description:"update an existing note"`
	Remove   removeCmd   `command:"rm" description:"delete a note"`
}
