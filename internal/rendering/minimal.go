package rendering

// NewMinimalTemplate returns the minimal theme: plain typography, thin
// rules, content first.
func NewMinimalTemplate() Template {
	return newHTMLTemplate(TemplateInfo{
		ID:          "minimal",
		Name:        "极简风格",
		Description: "极简设计，突出内容本身",
	}, minimalText)
}

const minimalCSS = `
    .header {
      margin-bottom: 40px;
      text-align: left;
    }

    .name {
      font-size: 32px;
      font-weight: 300;
      color: #000;
      margin-bottom: 10px;
      letter-spacing: -0.5px;
    }

    .contact-info {
      display: flex;
      flex-wrap: wrap;
      gap: 20px;
      font-size: 12px;
      color: #666;
      margin-bottom: 20px;
    }

    .contact-item {
      display: flex;
      align-items: center;
      gap: 5px;
    }

    .contact-icon {
      width: 12px;
      height: 12px;
      fill: currentColor;
      flex-shrink: 0;
    }

    .summary {
      color: #333;
      line-height: 1.8;
      font-size: 14px;
      margin-top: 20px;
      max-width: 80%;
      white-space: pre-wrap;
      word-wrap: break-word;
    }

    .section {
      margin-bottom: 40px;
    }

    .section-title {
      font-size: 14px;
      font-weight: 600;
      color: #000;
      text-transform: uppercase;
      letter-spacing: 2px;
      margin-bottom: 20px;
      padding-bottom: 5px;
      border-bottom: 1px solid #000;
    }

    .experience-item, .education-item, .project-item {
      margin-bottom: 25px;
      padding-bottom: 20px;
      border-bottom: 1px solid #eee;
    }

    .experience-item:last-child,
    .education-item:last-child,
    .project-item:last-child {
      border-bottom: none;
    }

    .item-header {
      margin-bottom: 8px;
    }

    .item-title {
      font-weight: 600;
      color: #000;
      font-size: 16px;
      margin-bottom: 3px;
    }

    .item-company {
      color: #666;
      font-size: 14px;
      margin-bottom: 3px;
    }

    .item-date {
      font-size: 12px;
      color: #999;
      font-style: italic;
    }

    .item-description {
      color: #444;
      font-size: 13px;
      line-height: 1.6;
      margin-top: 10px;
      white-space: pre-wrap;
      word-wrap: break-word;
    }

    .skills-grid {
      display: grid;
      grid-template-columns: 1fr 1fr 1fr;
      gap: 30px;
    }

    .skill-category {
      margin-bottom: 20px;
    }

    .skill-category-title {
      font-weight: 600;
      color: #000;
      margin-bottom: 10px;
      font-size: 13px;
      text-transform: uppercase;
      letter-spacing: 1px;
    }

    .skill-level {
      background: #000;
      color: white;
      padding: 1px 6px;
      border-radius: 2px;
      font-size: 9px;
      margin-left: 8px;
    }

    .skill-tags {
      display: flex;
      flex-wrap: wrap;
      gap: 8px;
    }

    .skill-tag, .tech-tag {
      background: none;
      color: #666;
      padding: 0;
      border: none;
      font-size: 12px;
      border-bottom: 1px solid #ddd;
    }
`

const minimalBody = `
{{define "header"}}
    <div class="header">
      <h1 class="name">{{with .PersonalInfo.FullName}}{{.}}{{else}}姓名{{end}}</h1>
      <div class="contact-info">
        {{with .PersonalInfo.Email}}<div class="contact-item"><svg class="contact-icon" viewBox="0 0 16 16"><path d="M0 4a2 2 0 0 1 2-2h12a2 2 0 0 1 2 2v8a2 2 0 0 1-2 2H2a2 2 0 0 1-2-2V4zm2-1a1 1 0 0 0-1 1v.217l7 4.2 7-4.2V4a1 1 0 0 0-1-1H2zm13 2.383-4.758 2.855L15 11.114v-5.73zm-.034 6.878L9.271 8.82 8 9.583 6.728 8.82l-5.694 3.44A1 1 0 0 0 2 13h12a1 1 0 0 0 .966-.739zM1 11.114l4.758-2.876L1 5.383v5.73z"/></svg>{{.}}</div>{{end}}
        {{with .PersonalInfo.Phone}}<div class="contact-item"><svg class="contact-icon" viewBox="0 0 16 16"><path d="M3.654 1.328a.678.678 0 0 0-1.015-.063L1.605 2.3c-.483.484-.661 1.169-.45 1.77a17.568 17.568 0 0 0 4.168 6.608 17.569 17.569 0 0 0 6.608 4.168c.601.211 1.286.033 1.77-.45l1.034-1.034a.678.678 0 0 0-.063-1.015l-2.307-1.794a.678.678 0 0 0-.58-.122L9.98 10.98a.678.678 0 0 1-.725-.332l-.81-1.214a.678.678 0 0 1 .332-.725l1.548-.516a.678.678 0 0 0 .122-.58L8.653 5.306a.678.678 0 0 0-1.015-.063L6.604 6.277a.678.678 0 0 1-.725.332L4.665 6.097a.678.678 0 0 1-.332-.725l.516-1.548a.678.678 0 0 0-.122-.58L3.654 1.328z"/></svg>{{.}}</div>{{end}}
        {{with .PersonalInfo.Location}}<div class="contact-item"><svg class="contact-icon" viewBox="0 0 16 16"><path d="M8 16s6-5.686 6-10A6 6 0 0 0 2 6c0 4.314 6 10 6 10zm0-7a3 3 0 1 1 0-6 3 3 0 0 1 0 6z"/></svg>{{.}}</div>{{end}}
        {{with .PersonalInfo.Website}}<div class="contact-item"><svg class="contact-icon" viewBox="0 0 16 16"><circle cx="8" cy="8" r="7" fill="none" stroke="currentColor"/><ellipse cx="8" cy="8" rx="3" ry="7" fill="none" stroke="currentColor"/><line x1="1" y1="8" x2="15" y2="8" stroke="currentColor"/></svg>{{.}}</div>{{end}}
        {{with .PersonalInfo.GitHub}}<div class="contact-item"><svg class="contact-icon" viewBox="0 0 16 16"><path d="M8 0C3.58 0 0 3.58 0 8c0 3.54 2.29 6.53 5.47 7.59.4.07.55-.17.55-.38 0-.19-.01-.82-.01-1.49-2.01.37-2.53-.49-2.69-.94-.09-.23-.48-.94-.82-1.13-.28-.15-.68-.52-.01-.53.63-.01 1.08.58 1.23.82.72 1.21 1.87.87 2.33.66.07-.52.28-.87.51-1.07-1.78-.2-3.64-.89-3.64-3.95 0-.87.31-1.59.82-2.15-.08-.2-.36-1.02.08-2.12 0 0 .67-.21 2.2.82.64-.18 1.32-.27 2-.27.68 0 1.36.09 2 .27 1.53-1.04 2.2-.82 2.2-.82.44 1.1.16 1.92.08 2.12.51.56.82 1.27.82 2.15 0 3.07-1.87 3.75-3.65 3.95.29.25.54.73.54 1.48 0 1.07-.01 1.93-.01 2.2 0 .21.15.46.55.38A8.012 8.012 0 0 0 16 8c0-4.42-3.58-8-8-8z"/></svg>{{.}}</div>{{end}}
        {{with .PersonalInfo.LinkedIn}}<div class="contact-item"><svg class="contact-icon" viewBox="0 0 16 16"><path d="M0 1.146C0 .513.526 0 1.175 0h13.65C15.474 0 16 .513 16 1.146v13.708c0 .633-.526 1.146-1.175 1.146H1.175C.526 16 0 15.487 0 14.854V1.146zm4.943 12.248V6.169H2.542v7.225h2.401zm-1.2-8.212c.837 0 1.358-.554 1.358-1.248-.015-.709-.52-1.248-1.342-1.248-.822 0-1.359.54-1.359 1.248 0 .694.521 1.248 1.327 1.248h.016zm4.908 8.212V9.359c0-.216.016-.432.08-.586.173-.431.568-.878 1.232-.878.869 0 1.216.662 1.216 1.634v3.865h2.401V9.25c0-2.22-1.184-3.252-2.764-3.252-1.274 0-1.845.7-2.165 1.193v.025h-.016a5.54 5.54 0 0 1 .016-.025V6.169h-2.4c.03.678 0 7.225 0 7.225h2.4z"/></svg>{{.}}</div>{{end}}
      </div>
      {{with .PersonalInfo.Summary}}<div class="summary">{{.}}</div>{{end}}
    </div>
{{end}}

{{define "workExperience"}}
    <div class="section">
      <h2 class="section-title">工作经历</h2>
      {{range .WorkExperience}}
      <div class="experience-item">
        <div class="item-header">
          <div class="item-title">{{.Position}}</div>
          <div class="item-company">{{.Company}}, {{.Location}}</div>
          <div class="item-date">{{dateRange .StartDate .EndDate .Current}}</div>
        </div>
        <div class="item-description">{{.Description}}</div>
      </div>
      {{end}}
    </div>
{{end}}

{{define "education"}}
    <div class="section">
      <h2 class="section-title">教育背景</h2>
      {{range .Education}}
      <div class="education-item">
        <div class="item-header">
          <div class="item-title">{{.School}}</div>
          <div class="item-company">{{.Degree}} · {{.Major}}</div>
          <div class="item-date">{{dateRange .StartDate .EndDate .Current}}</div>
        </div>
      </div>
      {{end}}
    </div>
{{end}}

{{define "skills"}}
    <div class="section">
      <h2 class="section-title">技能</h2>
      <div class="skills-grid">
        {{range .Skills}}
        <div class="skill-category">
          <div class="skill-category-title">{{.Category}}<span class="skill-level">{{.Level}}</span></div>
          <div class="skill-tags">
            {{range $i, $s := .Skills}}{{if $i}} · {{end}}<span class="skill-tag">{{$s}}</span>{{end}}
          </div>
        </div>
        {{end}}
      </div>
    </div>
{{end}}

{{define "projects"}}
    <div class="section">
      <h2 class="section-title">项目经历</h2>
      {{range .Projects}}
      <div class="project-item">
        <div class="item-header">
          <div class="item-title">{{.Name}}</div>
          <div class="item-date">{{dateRange .StartDate .EndDate .Current}}</div>
        </div>
        <div class="item-description">{{.Description}}</div>
      </div>
      {{end}}
    </div>
{{end}}

{{define "certifications"}}
    <div class="section">
      <h2 class="section-title">证书</h2>
      {{range .Certifications}}
      <div class="education-item">
        <div class="item-header">
          <div class="item-title">{{.Name}}</div>
          <div class="item-company">{{.Issuer}}</div>
          <div class="item-date">{{formatMonth .Date}}{{with .ExpiryDate}} - 有效期至 {{formatMonth .}}{{end}}</div>
        </div>
      </div>
      {{end}}
    </div>
{{end}}

{{define "languages"}}
    <div class="section">
      <h2 class="section-title">语言</h2>
      <div class="skills-grid">
        {{range .Languages}}
        <div class="skill-category">
          <div class="skill-category-title">{{.Language}}<span class="skill-level">{{.Proficiency}}</span></div>
        </div>
        {{end}}
      </div>
    </div>
{{end}}
`

const minimalText = pageOpen + minimalCSS + pageClose + minimalBody
