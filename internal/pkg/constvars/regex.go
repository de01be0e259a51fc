package constvars

const (
	RegexEmail           = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexPhone           = `^[+]?[1-9][\d]{0,15}$`
	RegexPhoneFormatting = `[\s\-()]`
	RegexTimeHHMM        = `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`
	RegexCamelCaseUpper  = `([A-Z])`
)

const (
	LayoutDateYYYYMMDD = "2006-01-02"
)
