package profile

// Locale carries the language-dependent strings: section display names,
// heading names used by the extractor, issue/recommendation templates, and
// the overall-narrative bands. Scoring math never depends on the locale.
type Locale struct {
	Lang         string
	sectionNames map[Section]string
	headings     map[Section][]string
	messages     map[string]message
	bands        []band
}

type message struct {
	issue string
	rec   string
}

type band struct {
	min  int
	text string
}

// GetLocale returns the locale for a language code, defaulting to English.
func GetLocale(lang string) *Locale {
	if l, ok := locales[lang]; ok {
		return l
	}
	return locales["en"]
}

// SectionName returns the display name for a section.
func (l *Locale) SectionName(sec Section) string {
	if n, ok := l.sectionNames[sec]; ok {
		return n
	}
	return string(sec)
}

// Headings returns the heading texts the extractor searches for when
// locating a collection section's container. English headings are always
// included as a fallback since LinkedIn mixes locales on partial loads.
func (l *Locale) Headings(sec Section) []string {
	names := l.headings[sec]
	if l.Lang != "en" {
		names = append(names, locales["en"].headings[sec]...)
	}
	return names
}

// Issue returns the issue text for a message key.
func (l *Locale) Issue(key string) string { return l.messages[key].issue }

// Rec returns the recommendation text for a message key.
func (l *Locale) Rec(key string) string { return l.messages[key].rec }

// Narrative maps a total score to its fixed overall-recommendation band.
func (l *Locale) Narrative(total int) string {
	for _, b := range l.bands {
		if total >= b.min {
			return b.text
		}
	}
	return l.bands[len(l.bands)-1].text
}

var locales = map[string]*Locale{
	"en": {
		Lang: "en",
		sectionNames: map[Section]string{
			SectionPhoto:           "Profile photo",
			SectionBanner:          "Background banner",
			SectionHeadline:        "Headline",
			SectionAbout:           "About",
			SectionExperience:      "Experience",
			SectionSkills:          "Skills",
			SectionEducation:       "Education",
			SectionOpenToWork:      "Open to work",
			SectionCustomURL:       "Custom URL",
			SectionCertifications:  "Certifications",
			SectionRecommendations: "Recommendations",
		},
		headings: map[Section][]string{
			SectionAbout:           {"About"},
			SectionExperience:      {"Experience"},
			SectionEducation:       {"Education"},
			SectionSkills:          {"Skills"},
			SectionCertifications:  {"Licenses & certifications", "Certifications"},
			SectionRecommendations: {"Recommendations"},
		},
		messages: map[string]message{
			"missing_photo":    {"No profile photo found", "Upload a professional headshot — profiles with photos get far more views"},
			"missing_banner":   {"No background banner set", "Add a banner image that reflects your field"},
			"missing_headline": {"Headline is empty", "Write a headline describing your role and strongest skills"},
			"missing_about":    {"About section is empty", "Write an About summary covering your experience, results, and goals"},
			"missing_experience": {"No experience entries found", "Add your work history with titles, companies, and dates"},
			"missing_skills":     {"No skills listed", "Add your core skills so recruiters can find you"},
			"missing_education":  {"No education entries found", "Add your education history"},
			"missing_openToWork": {"Open-to-work is not enabled", "Enable open-to-work visibility if you are actively searching"},
			"missing_customUrl":  {"Profile URL not found", "Claim a custom LinkedIn URL"},
			"missing_certifications":  {"No certifications listed", "Add relevant licenses and certifications"},
			"missing_recommendations": {"No recommendations received", "Ask colleagues or managers for a recommendation"},

			"headline_length":    {"Headline length is outside the effective range", "Aim for 40-120 characters in your headline"},
			"headline_keyword":   {"Headline lacks a role keyword", "Name your role explicitly, e.g. Engineer, Designer, Manager"},
			"headline_separator": {"Headline is a single phrase", "Chain 2-3 descriptors with separators like | or •"},
			"headline_skills":    {"Headline mentions few searchable skills", "Work 2-3 key skills into your headline"},

			"about_length":  {"About text is very short", "Expand your About to at least a few sentences"},
			"about_depth":   {"About lacks depth", "Grow the About summary to 200+ characters covering your background"},
			"about_results": {"About has no measurable results", "Quantify an achievement, e.g. \"cut costs by 30%\""},
			"about_skills":  {"About mentions no recognizable skills", "Name the technologies and skills you work with"},
			"about_cta":     {"About has no way to reach you", "Close with contact info or a call to action"},

			"experience_entries":      {"Experience section is sparse", "List at least your current role"},
			"experience_more":         {"Fewer than 3 experience entries", "Add earlier roles to show progression"},
			"experience_descriptions": {"Experience entries lack descriptions", "Describe what you did in each role (50+ characters)"},
			"experience_metrics":      {"Experience descriptions have no measurable results", "Add numbers: team size, growth, performance gains"},

			"skills_min":  {"Fewer than 3 skills listed", "Add your strongest skills first"},
			"skills_five": {"Skill list is thin", "Add more skills — aim for at least 5 core skills"},
			"skills_ten":  {"Skill list could be broader", "Grow toward 10+ endorsable skills"},

			"education_entry":  {"Education section is empty", "Add at least one education entry"},
			"education_degree": {"Education entries lack degree or field", "Include your degree and field of study"},
			"education_dates":  {"Education entries lack dates", "Add attendance years"},

			"custom_url_set":    {"Profile URL missing", "Claim your public profile URL"},
			"custom_url_custom": {"Profile URL is auto-generated", "Customize your URL to firstname-lastname"},

			"certs_any":  {"No certifications found", "Add a relevant certification to stand out"},
			"certs_more": {"Only a couple of certifications listed", "Add further certifications relevant to your target role"},

			"recs_any":  {"No recommendations yet", "Request a recommendation from a recent colleague"},
			"recs_more": {"Fewer than 3 recommendations", "Collect recommendations across different roles"},

			"open_to_work": {"Open-to-work signal not detected", "Turn on open-to-work if you want recruiter outreach"},

			"fallback_basic": {"Section content was recovered from page keywords and may be incomplete", "Complete this section manually so the full details are visible"},
		},
		bands: []band{
			{90, "Outstanding profile — keep it fresh with recent accomplishments."},
			{75, "Strong profile. Close the remaining gaps below to reach the top tier."},
			{60, "Solid foundation, but several sections need attention to be competitive."},
			{40, "Your profile is underselling you — work through the priorities below."},
			{0, "Your profile needs substantial work. Start with the top priorities below."},
		},
	},
	"zh": {
		Lang: "zh",
		sectionNames: map[Section]string{
			SectionPhoto:           "头像",
			SectionBanner:          "背景图",
			SectionHeadline:        "头衔",
			SectionAbout:           "简介",
			SectionExperience:      "工作经历",
			SectionSkills:          "技能",
			SectionEducation:       "教育经历",
			SectionOpenToWork:      "求职状态",
			SectionCustomURL:       "个性化网址",
			SectionCertifications:  "证书",
			SectionRecommendations: "推荐信",
		},
		headings: map[Section][]string{
			SectionAbout:           {"关于", "简介"},
			SectionExperience:      {"工作经历", "经验"},
			SectionEducation:       {"教育经历"},
			SectionSkills:          {"技能"},
			SectionCertifications:  {"证书", "执照与认证"},
			SectionRecommendations: {"推荐信"},
		},
		messages: map[string]message{
			"missing_photo":    {"未找到头像", "上传一张职业头像，带照片的档案浏览量更高"},
			"missing_banner":   {"未设置背景图", "添加一张体现你专业领域的背景图"},
			"missing_headline": {"头衔为空", "撰写说明职位与核心技能的头衔"},
			"missing_about":    {"简介为空", "撰写涵盖经验、成果与目标的简介"},
			"missing_experience": {"未找到工作经历", "添加包含职位、公司和日期的工作经历"},
			"missing_skills":     {"未列出技能", "添加核心技能，便于招聘方检索"},
			"missing_education":  {"未找到教育经历", "补充教育背景"},
			"missing_openToWork": {"未开启求职状态", "如在积极求职，请开启求职可见状态"},
			"missing_customUrl":  {"未找到档案网址", "领取个性化 LinkedIn 网址"},
			"missing_certifications":  {"未列出证书", "添加相关执照与认证"},
			"missing_recommendations": {"暂无推荐信", "向同事或上级请求推荐"},

			"headline_length":    {"头衔长度不在有效范围内", "头衔建议控制在 40-120 个字符"},
			"headline_keyword":   {"头衔缺少职位关键词", "明确写出职位，如工程师、设计师、经理"},
			"headline_separator": {"头衔只有单一短语", "用 | 或 • 串联 2-3 个描述"},
			"headline_skills":    {"头衔几乎没有可检索技能", "在头衔中加入 2-3 项关键技能"},

			"about_length":  {"简介过短", "将简介扩展到至少几句话"},
			"about_depth":   {"简介缺乏深度", "将简介扩展到 200 字以上，覆盖你的背景"},
			"about_results": {"简介没有量化成果", "量化一个成就，例如\"成本降低 30%\""},
			"about_skills":  {"简介未提及可识别技能", "写明你使用的技术与技能"},
			"about_cta":     {"简介缺少联系方式", "结尾附上联系方式或行动号召"},

			"experience_entries":      {"工作经历过少", "至少列出当前职位"},
			"experience_more":         {"工作经历少于 3 条", "补充早期职位以展示成长轨迹"},
			"experience_descriptions": {"工作经历缺少描述", "为每段经历补充 50 字以上的职责描述"},
			"experience_metrics":      {"经历描述没有量化成果", "加入数字：团队规模、增长、性能提升"},

			"skills_min":  {"技能少于 3 项", "先添加你最强的技能"},
			"skills_five": {"技能列表偏少", "继续添加技能，至少 5 项核心技能"},
			"skills_ten":  {"技能覆盖面可以更广", "向 10 项以上可背书技能扩展"},

			"education_entry":  {"教育经历为空", "至少添加一条教育经历"},
			"education_degree": {"教育经历缺少学位或专业", "补充学位与专业"},
			"education_dates":  {"教育经历缺少时间", "补充就读年份"},

			"custom_url_set":    {"缺少档案网址", "领取公开档案网址"},
			"custom_url_custom": {"档案网址为系统默认", "将网址自定义为姓名形式"},

			"certs_any":  {"未找到证书", "添加一项相关认证以脱颖而出"},
			"certs_more": {"证书数量较少", "继续添加与目标职位相关的认证"},

			"recs_any":  {"暂无推荐信", "向近期共事的同事请求推荐"},
			"recs_more": {"推荐信少于 3 封", "在不同职位阶段积累推荐信"},

			"open_to_work": {"未检测到求职状态", "如希望获得招聘方联系，请开启求职状态"},

			"fallback_basic": {"该部分内容由页面关键词恢复，可能不完整", "请手动完善此部分以展示完整信息"},
		},
		bands: []band{
			{90, "档案非常出色——保持更新最新成果。"},
			{75, "档案质量很高，补齐下方剩余短板即可进入顶级水平。"},
			{60, "基础扎实，但若要有竞争力，还有多个部分需要完善。"},
			{40, "档案未能充分展示你的价值，请按下方优先级逐项改进。"},
			{0, "档案需要大幅完善，请从下方最高优先级开始。"},
		},
	},
}
