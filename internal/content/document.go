package content

// Button 描述首页幻灯片上的跳转按钮。
type Button struct {
	Text string `json:"text"`
	Link string `json:"link"`
	Icon string `json:"icon"`
}

// HeroSlide 是首页轮播中的一帧。SecondaryBtn 允许为空。
type HeroSlide struct {
	ID             int     `json:"id"`
	Badge          string  `json:"badge"`
	BadgeIcon      string  `json:"badgeIcon"`
	Title          string  `json:"title"`
	TitleHighlight string  `json:"titleHighlight"`
	TitleEnd       string  `json:"titleEnd"`
	Description    string  `json:"description"`
	PrimaryBtn     *Button `json:"primaryBtn"`
	SecondaryBtn   *Button `json:"secondaryBtn"`
	Gradient       string  `json:"gradient"`
	BgImage        string  `json:"bgImage"`
}

// Stat 是"数字成就"区块的一项统计。
type Stat struct {
	ID       int    `json:"id"`
	Value    string `json:"value"`
	Label    string `json:"label"`
	Gradient string `json:"gradient"`
}

// Award 为奖项展示项，存储结构中存在但默认内容不包含。
type Award struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Image        string `json:"image"`
	IconGradient string `json:"iconGradient"`
	BgGradient   string `json:"bgGradient"`
	BorderColor  string `json:"borderColor"`
}

// Client 为合作客户展示项，同样仅存在于存储结构。
type Client struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Industry   string `json:"industry"`
	Icon       string `json:"icon"`
	Image      string `json:"image"`
	ColorClass string `json:"colorClass"`
	Gradient   string `json:"gradient"`
}

// Service 是服务区块的一项。
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ColorClass  string `json:"colorClass"`
	Gradient    string `json:"gradient"`
}

// WhyChooseUsItem 没有稳定 id，只能按数组下标寻址。
type WhyChooseUsItem struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Gradient string `json:"gradient"`
}

// Company 保存公司基本信息与联系方式。
type Company struct {
	Name              string `json:"name"`
	Tagline           string `json:"tagline"`
	Description       string `json:"description"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	OfficeAddress     string `json:"officeAddress"`
	RegisteredAddress string `json:"registeredAddress"`
}

// About 是关于我们区块。
type About struct {
	Badge          string            `json:"badge"`
	Title          string            `json:"title"`
	TitleHighlight string            `json:"titleHighlight"`
	Description1   string            `json:"description1"`
	Description2   string            `json:"description2"`
	WhyChooseUs    []WhyChooseUsItem `json:"whyChooseUs"`
}

// Contact 是联系我们区块。
type Contact struct {
	Badge          string `json:"badge"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	CtaTitle       string `json:"ctaTitle"`
	CtaDescription string `json:"ctaDescription"`
}

// SocialLinks 保存各社交平台链接。
type SocialLinks struct {
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	WhatsApp string `json:"whatsapp"`
}

// Footer 是页脚区块。
type Footer struct {
	Copyright    string `json:"copyright"`
	DesignedBy   string `json:"designedBy"`
	DesignerLink string `json:"designerLink"`
}

// Document 是整站内容文档。全局只存在一份，按命名区块整体替换。
type Document struct {
	Company     Company     `json:"company"`
	HeroSlides  []HeroSlide `json:"heroSlides"`
	Stats       []Stat      `json:"stats"`
	Awards      []Award     `json:"awards,omitempty"`
	Clients     []Client    `json:"clients,omitempty"`
	Services    []Service   `json:"services"`
	About       About       `json:"about"`
	Contact     Contact     `json:"contact"`
	SocialLinks SocialLinks `json:"socialLinks"`
	Footer      Footer      `json:"footer"`
}
