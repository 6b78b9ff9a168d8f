package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyWorkbook         = "workbook"
	KeyBrowse           = "browse"
	KeyCreateTemplate   = "create_template"
	KeyImageFolder      = "image_folder"
	KeyProfile          = "profile"
	KeyBrowsers         = "browsers"
	KeyHeadless         = "headless"
	KeyLoadTasks        = "load_tasks"
	KeyIncludeCompleted = "include_completed"
	KeyStart            = "start"
	KeyStop             = "stop"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyType             = "type"
	KeyAspectRatio      = "aspect_ratio"
	KeyDuration         = "duration"
	KeyResolution       = "resolution"
	KeyTaskDelay        = "task_delay"
	KeyReveal           = "reveal"
	KeyOpen             = "open"
	KeyCopyPath         = "copy_path"
	KeySettingsSaved    = "settings_saved"
	KeyTasksLoaded      = "tasks_loaded"
	KeyNoWorkbook       = "no_workbook"
	KeyNoTasks          = "no_tasks"
	KeyTemplateCreated  = "template_created"
	KeyRunStarted       = "run_started"
	KeyRunFinished      = "run_finished"
	KeyLoginRequired    = "login_required"
	KeyLoginMessage     = "login_message"
	KeyErrorOpeningFile = "error_opening_file"
	KeyStoppingRun      = "stopping_run"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"vi": "Tiếng Việt",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Sora Batch",
		KeyWorkbook:         "Workbook",
		KeyBrowse:           "Browse",
		KeyCreateTemplate:   "Create Template",
		KeyImageFolder:      "Image Folder",
		KeyProfile:          "Profile",
		KeyBrowsers:         "Browsers",
		KeyHeadless:         "Headless",
		KeyLoadTasks:        "Load Tasks",
		KeyIncludeCompleted: "Include completed rows",
		KeyStart:            "Start",
		KeyStop:             "Stop",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyType:             "Type",
		KeyAspectRatio:      "Aspect Ratio",
		KeyDuration:         "Duration",
		KeyResolution:       "Resolution",
		KeyTaskDelay:        "Delay between tasks (s)",
		KeyReveal:           "Reveal",
		KeyOpen:             "Open",
		KeyCopyPath:         "Copy Path",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyTasksLoaded:      "Tasks loaded",
		KeyNoWorkbook:       "Please select a workbook first",
		KeyNoTasks:          "No pending tasks in the workbook",
		KeyTemplateCreated:  "Template workbook created",
		KeyRunStarted:       "Run started",
		KeyRunFinished:      "Run finished",
		KeyLoginRequired:    "Login required",
		KeyLoginMessage:     "Please sign in using the browser window. The run continues automatically once you are logged in.",
		KeyErrorOpeningFile: "Error opening file",
		KeyStoppingRun:      "Stopping after the current task...",
	}

	// Vietnamese texts
	l.texts["vi"] = map[string]string{
		KeyAppTitle:         "Sora Batch",
		KeyWorkbook:         "Bảng tính",
		KeyBrowse:           "Chọn tệp",
		KeyCreateTemplate:   "Tạo mẫu",
		KeyImageFolder:      "Thư mục ảnh",
		KeyProfile:          "Hồ sơ",
		KeyBrowsers:         "Trình duyệt",
		KeyHeadless:         "Chạy ẩn",
		KeyLoadTasks:        "Tải nhiệm vụ",
		KeyIncludeCompleted: "Gồm cả dòng đã hoàn thành",
		KeyStart:            "Bắt đầu",
		KeyStop:             "Dừng",
		KeySettings:         "Cài đặt",
		KeyFile:             "Tệp",
		KeyLanguage:         "Ngôn ngữ",
		KeySave:             "Lưu",
		KeyCancel:           "Hủy",
		KeyType:             "Loại",
		KeyAspectRatio:      "Tỷ lệ khung hình",
		KeyDuration:         "Thời lượng",
		KeyResolution:       "Độ phân giải",
		KeyTaskDelay:        "Giãn cách giữa nhiệm vụ (giây)",
		KeyReveal:           "Hiện tệp",
		KeyOpen:             "Mở",
		KeyCopyPath:         "Sao chép đường dẫn",
		KeySettingsSaved:    "Đã lưu cài đặt!",
		KeyTasksLoaded:      "Đã tải nhiệm vụ",
		KeyNoWorkbook:       "Vui lòng chọn bảng tính trước",
		KeyNoTasks:          "Không có nhiệm vụ chờ trong bảng tính",
		KeyTemplateCreated:  "Đã tạo bảng tính mẫu",
		KeyRunStarted:       "Đã bắt đầu chạy",
		KeyRunFinished:      "Đã chạy xong",
		KeyLoginRequired:    "Cần đăng nhập",
		KeyLoginMessage:     "Vui lòng đăng nhập trong cửa sổ trình duyệt. Quá trình sẽ tự tiếp tục sau khi đăng nhập.",
		KeyErrorOpeningFile: "Lỗi mở tệp",
		KeyStoppingRun:      "Sẽ dừng sau nhiệm vụ hiện tại...",
	}
}
