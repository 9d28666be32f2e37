package view

import "github.com/van-is-code/portfolio/internal/content"

// Labels is the fixed interface text for one language. Everything else on the
// page comes from the bundle.
type Labels struct {
	Hello            string
	ViewCV           string
	ViewFullCV       string
	ToggleLanguage   string
	Contact          string
	SkillsHeading    string
	BackendColumn    string
	FrontendColumn   string
	ToolsColumn      string
	FeaturedProjects string
	Email            string
	Phone            string
	Address          string
	DownloadCV       string
	Print            string
	Close            string
	Objectives       string
	Education        string
	Skills           string
	Projects         string
	Experience       string
	Hobbies          string
	Technologies     string
	Loading          string
	AllRights        string
	MadeWith         string
}

var labels = map[content.Language]Labels{
	content.English: {
		Hello:            "Hello",
		ViewCV:           "View CV",
		ViewFullCV:       "View full CV",
		ToggleLanguage:   "Toggle language",
		Contact:          "Contact",
		SkillsHeading:    "Skills & Technologies",
		BackendColumn:    "Backend Development",
		FrontendColumn:   "Frontend Development",
		ToolsColumn:      "Tools & Technologies",
		FeaturedProjects: "Featured Projects",
		Email:            "Email",
		Phone:            "Phone",
		Address:          "Address",
		DownloadCV:       "Download CV (PDF)",
		Print:            "Print",
		Close:            "Close",
		Objectives:       "CAREER OBJECTIVES",
		Education:        "EDUCATION",
		Skills:           "SKILLS",
		Projects:         "PROJECTS",
		Experience:       "WORK EXPERIENCE",
		Hobbies:          "HOBBIES",
		Technologies:     "Technologies",
		Loading:          "Loading...",
		AllRights:        "All rights reserved.",
		MadeWith:         "Made with Go + WebAssembly",
	},
	content.Vietnamese: {
		Hello:            "Xin chào",
		ViewCV:           "Xem CV",
		ViewFullCV:       "Xem CV đầy đủ",
		ToggleLanguage:   "Đổi ngôn ngữ",
		Contact:          "Liên hệ",
		SkillsHeading:    "Kỹ năng & Công nghệ",
		BackendColumn:    "Backend Development",
		FrontendColumn:   "Frontend Development",
		ToolsColumn:      "Tools & Technologies",
		FeaturedProjects: "Dự án nổi bật",
		Email:            "Email",
		Phone:            "Điện thoại",
		Address:          "Địa chỉ",
		DownloadCV:       "Tải CV (PDF)",
		Print:            "In CV",
		Close:            "Đóng",
		Objectives:       "MỤC TIÊU NGHỀ NGHIỆP",
		Education:        "HỌC VẤN",
		Skills:           "KỸ NĂNG",
		Projects:         "DỰ ÁN",
		Experience:       "KINH NGHIỆM LÀM VIỆC",
		Hobbies:          "SỞ THÍCH",
		Technologies:     "Công nghệ",
		Loading:          "Đang tải...",
		AllRights:        "Bảo lưu mọi quyền.",
		MadeWith:         "Xây dựng bằng Go + WebAssembly",
	},
}

// LabelsFor returns the interface text for lang, English for anything unknown.
func LabelsFor(lang content.Language) Labels {
	return labels[content.ParseLanguage(string(lang))]
}
