package i18n

import "strings"

var locale = "en"

// SetLocale selects the language for user-facing strings. English
// strings are the map keys, so "en" is a passthrough.
func SetLocale(l string) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "fa", "farsi", "persian":
		locale = "fa"
	default:
		locale = "en"
	}
}

func Locale() string {
	return locale
}

var translations = map[string]string{
	"Chat Room":           "اتاق گفتگو",
	"Users":               "کاربران",
	"online":              "آنلاین",
	"offline":             "آفلاین",
	"participants":        "شرکت کنندگان",
	"Search users...":     "جستجوی کاربران...",
	"Type a message...":   "پیامی بنویسید...",
	"Just now":            "هم اکنون",
	"connecting":          "در حال اتصال",
	"connected":           "متصل",
	"reconnecting":        "اتصال مجدد",
	"disconnected":        "قطع شده",
	"new messages":        "پیام های جدید",
	"media attachment":    "پیوست رسانه",
	"Pick a username":     "نام کاربری را انتخاب کنید",
	"Press Enter to join": "برای ورود اینتر را بزنید",
	"enter to send, tab to switch focus, ctrl+e for emoji, ctrl+c to quit": "اینتر برای ارسال، تب برای تغییر فوکوس، ctrl+e برای ایموجی، ctrl+c برای خروج",
	"username must be between 3 and 32 characters":                         "نام کاربری باید بین ۳ تا ۳۲ کاراکتر باشد",
	"username can only contain letters, numbers, and underscores":          "نام کاربری فقط می تواند شامل حروف، اعداد و زیرخط باشد",
}

var prefixTranslations = map[string]string{
	"failed to connect:":      "خطا در برقراری اتصال",
	"failed to send message:": "خطا در ارسال پیام",
	"failed to reach server:": "خطا در دسترسی به سرور",
}

func Translate(message string) string {
	if locale == "en" {
		return message
	}
	if translated, ok := translations[message]; ok {
		return translated
	}
	for prefix, translated := range prefixTranslations {
		if strings.HasPrefix(message, prefix) {
			return translated
		}
	}
	return message
}
