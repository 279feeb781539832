package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/translateai/translateai-desktop/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLocale    func() string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyLoginRegister      = "login_register"
	KeyHeroTitle          = "hero_title"
	KeyHeroSubtitle       = "hero_subtitle"
	KeyUploadPrompt       = "upload_prompt"
	KeyStartTranslation   = "start_translation"
	KeyTranslating        = "translating"
	KeyProgressFormat     = "progress_format"
	KeyDownloadTranslated = "download_translated"
	KeyDownloadAck        = "download_ack"
	KeyFeatureLangTitle   = "feature_languages_title"
	KeyFeatureLangText    = "feature_languages_text"
	KeyFeatureAccTitle    = "feature_accuracy_title"
	KeyFeatureAccText     = "feature_accuracy_text"
	KeyFeatureRateTitle   = "feature_rating_title"
	KeyFeatureRateText    = "feature_rating_text"
	KeyFooter             = "footer"
	KeyLogin              = "login"
	KeyRegister           = "register"
	KeyName               = "name"
	KeyPhone              = "phone"
	KeyEmail              = "email"
	KeyPassword           = "password"
	KeyNeedAccount        = "need_account"
	KeyHaveAccount        = "have_account"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyTickInterval       = "tick_interval"
	KeyProgressStep       = "progress_step"
	KeyLogLevel           = "log_level"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyMenu               = "menu"
	KeyErrUpload          = "error_upload"
	KeyErrNoFile          = "error_no_file"
	KeyErrStart           = "error_start"
	KeyErrDownload        = "error_download"
	KeyFillIn             = "fill_in"
)

// supportedLanguages is ordered so English wins when nothing matches
var supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// errorKeys maps the service's user-facing messages to localization keys
var errorKeys = map[string]string{
	model.MsgUploadFailed:   KeyErrUpload,
	model.MsgNoFile:         KeyErrNoFile,
	model.MsgStartFailed:    KeyErrStart,
	model.MsgDownloadFailed: KeyErrDownload,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		systemLocale:    func() string { return string(lang.SystemLocale()) },
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" follows the OS locale
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = matchLanguage(l.systemLocale())
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// matchLanguage picks the closest supported base language for a locale string like "pt-BR"
func matchLanguage(locale string) string {
	tag, _, _ := languageMatcher.Match(language.Make(locale))
	base, _ := tag.Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// fieldKeys maps credential field names to their label keys
var fieldKeys = map[string]string{
	"name":     KeyName,
	"phone":    KeyPhone,
	"email":    KeyEmail,
	"password": KeyPassword,
}

// MissingFieldsMessage builds the form feedback for blank required fields
func (l *Localization) MissingFieldsMessage(fields []string) string {
	labels := make([]string, 0, len(fields))
	for _, field := range fields {
		if key, ok := fieldKeys[field]; ok {
			labels = append(labels, l.GetText(key))
		} else {
			labels = append(labels, field)
		}
	}
	return l.GetText(KeyFillIn) + ": " + strings.Join(labels, ", ")
}

// LocalizeError translates a known service error message; unknown messages pass through
func (l *Localization) LocalizeError(msg string) string {
	if key, ok := errorKeys[msg]; ok {
		return l.GetText(key)
	}
	return msg
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "TranslateAI",
		KeyLoginRegister:      "Login / Register",
		KeyHeroTitle:          "AI-Powered Document Translation",
		KeyHeroSubtitle:       "Translate your documents with speed and accuracy",
		KeyUploadPrompt:       "Click to upload or drag and drop",
		KeyStartTranslation:   "Start Translation",
		KeyTranslating:        "Translating...",
		KeyProgressFormat:     "Translation Progress: %d%%",
		KeyDownloadTranslated: "Download Translated PDF",
		KeyDownloadAck:        "Downloading translated PDF...",
		KeyFeatureLangTitle:   "50+ Languages",
		KeyFeatureLangText:    "Support for over 50 languages, enabling global communication.",
		KeyFeatureAccTitle:    "99% Accuracy",
		KeyFeatureAccText:     "Our AI ensures 99% accuracy in translations, maintaining context and nuance.",
		KeyFeatureRateTitle:   "4.9/5 User Rating",
		KeyFeatureRateText:    "Highly rated by our users for quality and ease of use.",
		KeyFooter:             "© 2023 TranslateAI. All rights reserved.",
		KeyLogin:              "Login",
		KeyRegister:           "Register",
		KeyName:               "Name",
		KeyPhone:              "Phone Number",
		KeyEmail:              "Email",
		KeyPassword:           "Password",
		KeyNeedAccount:        "Need an account? Register",
		KeyHaveAccount:        "Already have an account? Login",
		KeyFillIn:             "Please fill in",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyTickInterval:       "Progress Interval (ms)",
		KeyProgressStep:       "Progress Step (%)",
		KeyLogLevel:           "Log Level",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyMenu:               "Menu",
		KeyErrUpload:          model.MsgUploadFailed,
		KeyErrNoFile:          model.MsgNoFile,
		KeyErrStart:           model.MsgStartFailed,
		KeyErrDownload:        model.MsgDownloadFailed,
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "TranslateAI",
		KeyLoginRegister:      "Вход / Регистрация",
		KeyHeroTitle:          "Перевод документов с помощью ИИ",
		KeyHeroSubtitle:       "Переводите документы быстро и точно",
		KeyUploadPrompt:       "Нажмите, чтобы загрузить, или перетащите файл",
		KeyStartTranslation:   "Начать перевод",
		KeyTranslating:        "Перевод...",
		KeyProgressFormat:     "Прогресс перевода: %d%%",
		KeyDownloadTranslated: "Скачать переведённый PDF",
		KeyDownloadAck:        "Загрузка переведённого PDF...",
		KeyFeatureLangTitle:   "50+ языков",
		KeyFeatureLangText:    "Поддержка более 50 языков для общения по всему миру.",
		KeyFeatureAccTitle:    "Точность 99%",
		KeyFeatureAccText:     "Наш ИИ обеспечивает точность перевода 99%, сохраняя контекст и оттенки.",
		KeyFeatureRateTitle:   "Оценка 4.9/5",
		KeyFeatureRateText:    "Пользователи высоко ценят качество и удобство.",
		KeyFooter:             "© 2023 TranslateAI. Все права защищены.",
		KeyLogin:              "Вход",
		KeyRegister:           "Регистрация",
		KeyName:               "Имя",
		KeyPhone:              "Номер телефона",
		KeyEmail:              "Email",
		KeyPassword:           "Пароль",
		KeyNeedAccount:        "Нет аккаунта? Зарегистрируйтесь",
		KeyHaveAccount:        "Уже есть аккаунт? Войти",
		KeyFillIn:             "Заполните поля",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyTickInterval:       "Интервал прогресса (мс)",
		KeyProgressStep:       "Шаг прогресса (%)",
		KeyLogLevel:           "Уровень журнала",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyMenu:               "Меню",
		KeyErrUpload:          "Ошибка загрузки файла. Попробуйте ещё раз.",
		KeyErrNoFile:          "Загрузите файл перед началом перевода.",
		KeyErrStart:           "Ошибка запуска перевода. Попробуйте ещё раз.",
		KeyErrDownload:        "Ошибка скачивания файла. Попробуйте ещё раз.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "TranslateAI",
		KeyLoginRegister:      "Entrar / Registrar",
		KeyHeroTitle:          "Tradução de Documentos com IA",
		KeyHeroSubtitle:       "Traduza seus documentos com rapidez e precisão",
		KeyUploadPrompt:       "Clique para enviar ou arraste e solte",
		KeyStartTranslation:   "Iniciar Tradução",
		KeyTranslating:        "Traduzindo...",
		KeyProgressFormat:     "Progresso da Tradução: %d%%",
		KeyDownloadTranslated: "Baixar PDF Traduzido",
		KeyDownloadAck:        "Baixando PDF traduzido...",
		KeyFeatureLangTitle:   "50+ Idiomas",
		KeyFeatureLangText:    "Suporte a mais de 50 idiomas para comunicação global.",
		KeyFeatureAccTitle:    "99% de Precisão",
		KeyFeatureAccText:     "Nossa IA garante 99% de precisão, mantendo contexto e nuances.",
		KeyFeatureRateTitle:   "Avaliação 4.9/5",
		KeyFeatureRateText:    "Muito bem avaliado pela qualidade e facilidade de uso.",
		KeyFooter:             "© 2023 TranslateAI. Todos os direitos reservados.",
		KeyLogin:              "Entrar",
		KeyRegister:           "Registrar",
		KeyName:               "Nome",
		KeyPhone:              "Telefone",
		KeyEmail:              "Email",
		KeyPassword:           "Senha",
		KeyNeedAccount:        "Precisa de uma conta? Registre-se",
		KeyHaveAccount:        "Já tem uma conta? Entrar",
		KeyFillIn:             "Preencha",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyTickInterval:       "Intervalo de Progresso (ms)",
		KeyProgressStep:       "Passo de Progresso (%)",
		KeyLogLevel:           "Nível de Log",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyMenu:               "Menu",
		KeyErrUpload:          "Erro ao enviar o arquivo. Tente novamente.",
		KeyErrNoFile:          "Envie um arquivo antes de iniciar a tradução.",
		KeyErrStart:           "Erro ao iniciar a tradução. Tente novamente.",
		KeyErrDownload:        "Erro ao baixar o arquivo. Tente novamente.",
	}
}
