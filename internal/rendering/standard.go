package rendering

// NewStandardTemplate returns the standard theme: boxed header, timeline
// markers on entries, and pill-style tags.
func NewStandardTemplate() Template {
	return newHTMLTemplate(TemplateInfo{
		ID:          "standard",
		Name:        "标准风格",
		Description: "经典布局，信息完整，适合多数求职场景",
	}, standardText)
}

const standardCSS = `
    .header {
      position: relative;
      padding: 25px;
      margin-bottom: 30px;
      background: linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%);
      border-radius: 12px;
      border: 1px solid #e2e8f0;
    }

    .name {
      font-size: 32px;
      font-weight: bold;
      color: #1e293b;
      margin-bottom: 15px;
    }

    .contact-info {
      display: grid;
      grid-template-columns: 1fr 1fr;
      gap: 20px;
      font-size: 14px;
      color: #64748b;
    }

    .contact-item {
      display: flex;
      align-items: center;
      gap: 10px;
      padding: 8px 12px;
      background: rgba(255, 255, 255, 0.7);
      border-radius: 8px;
      border: 1px solid #e2e8f0;
    }

    .summary {
      margin-top: 20px;
      padding: 16px;
      background: rgba(255, 255, 255, 0.8);
      border-radius: 10px;
      border: 1px solid #e2e8f0;
      color: #475569;
      line-height: 1.7;
      white-space: pre-wrap;
      word-wrap: break-word;
    }

    .section {
      margin-bottom: 25px;
    }

    .section-title {
      font-size: 18px;
      font-weight: bold;
      color: #1f2937;
      border-bottom: 1px solid #d1d5db;
      padding-bottom: 8px;
      margin-bottom: 15px;
    }

    .experience-item, .education-item, .project-item {
      border-left: 2px solid #e5e7eb;
      padding-left: 15px;
      margin-bottom: 20px;
      position: relative;
    }

    .experience-item::before, .education-item::before, .project-item::before {
      content: '';
      position: absolute;
      left: -5px;
      top: 5px;
      width: 8px;
      height: 8px;
      border-radius: 50%;
      background: #3b82f6;
    }

    .item-header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      margin-bottom: 8px;
    }

    .item-title {
      font-weight: 600;
      color: #1f2937;
      font-size: 16px;
    }

    .item-company {
      color: #3b82f6;
      font-weight: 500;
    }

    .item-date {
      font-size: 12px;
      color: #6b7280;
      text-align: right;
    }

    .item-description {
      color: #4b5563;
      font-size: 14px;
      line-height: 1.6;
      margin-bottom: 8px;
      white-space: pre-wrap;
      word-wrap: break-word;
    }

    .item-detail {
      font-size: 13px;
      color: #6b7280;
    }

    .item-links {
      font-size: 12px;
      color: #3b82f6;
    }

    .achievements {
      margin-left: 20px;
      color: #6b7280;
      font-size: 13px;
    }

    .skills-grid {
      display: grid;
      grid-template-columns: 1fr 1fr;
      gap: 15px;
    }

    .skill-category {
      margin-bottom: 15px;
    }

    .skill-category-title {
      font-weight: 600;
      color: #1f2937;
      margin-bottom: 5px;
      display: flex;
      align-items: center;
      gap: 8px;
    }

    .skill-level {
      background: #f3f4f6;
      color: #6b7280;
      padding: 2px 8px;
      border-radius: 12px;
      font-size: 11px;
    }

    .skill-tags {
      display: flex;
      flex-wrap: wrap;
      gap: 6px;
    }

    .skill-tag, .tech-tag {
      background: #e5e7eb;
      color: #374151;
      padding: 3px 8px;
      border-radius: 12px;
      font-size: 12px;
    }

    .tech-tags {
      display: flex;
      flex-wrap: wrap;
      gap: 4px;
      margin: 8px 0;
    }

    .cert-item, .lang-item {
      margin-bottom: 12px;
      font-size: 14px;
    }

    .cert-name, .lang-name {
      font-weight: 600;
      color: #1f2937;
    }

    .cert-issuer {
      color: #6b7280;
    }

    .cert-date {
      color: #9ca3af;
      font-size: 12px;
    }

    .cert-link {
      font-size: 11px;
      color: #3b82f6;
    }

    .lang-item {
      display: flex;
      justify-content: space-between;
      align-items: center;
    }

    .lang-proficiency {
      background: #f3f4f6;
      color: #6b7280;
      padding: 2px 8px;
      border-radius: 12px;
      font-size: 11px;
    }
`

const standardBody = `
{{define "header"}}
    <div class="header">
      <h1 class="name">{{with .PersonalInfo.FullName}}{{.}}{{else}}姓名{{end}}</h1>
      <div class="contact-info">
        <div>
          {{with .PersonalInfo.Email}}<div class="contact-item">📧 {{.}}</div>{{end}}
          {{with .PersonalInfo.Phone}}<div class="contact-item">📱 {{.}}</div>{{end}}
          {{with .PersonalInfo.Location}}<div class="contact-item">📍 {{.}}</div>{{end}}
        </div>
        <div>
          {{with .PersonalInfo.Website}}<div class="contact-item">🌐 {{.}}</div>{{end}}
          {{with .PersonalInfo.GitHub}}<div class="contact-item">💻 {{.}}</div>{{end}}
          {{with .PersonalInfo.LinkedIn}}<div class="contact-item">💼 {{.}}</div>{{end}}
        </div>
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
          <div>
            <div class="item-title">{{.Position}}</div>
            <div class="item-company">{{.Company}}</div>
          </div>
          <div class="item-date">
            📅 {{dateRange .StartDate .EndDate .Current}}<br>
            📍 {{.Location}}
          </div>
        </div>
        <div class="item-description">{{.Description}}</div>
        {{with .Achievements}}
        <ul class="achievements">
          {{range .}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
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
          <div>
            <div class="item-title">{{.School}}</div>
            <div class="item-company">{{.Degree}} - {{.Major}}</div>
            {{with .GPA}}<div class="item-detail">GPA: {{.}}</div>{{end}}
          </div>
          <div class="item-date">📅 {{dateRange .StartDate .EndDate .Current}}</div>
        </div>
        {{with .Honors}}<div class="item-detail">荣誉: {{join . ", "}}</div>{{end}}
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
          <div class="skill-category-title">
            {{.Category}}
            <span class="skill-level">{{.Level}}</span>
          </div>
          <div class="skill-tags">
            {{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}
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
          <div>
            <div class="item-title">{{.Name}}</div>
            {{if or .URL .GitHub}}
            <div class="item-links">
              {{with .URL}}🔗 {{.}}{{end}}
              {{with .GitHub}}💻 {{.}}{{end}}
            </div>
            {{end}}
          </div>
          <div class="item-date">📅 {{dateRange .StartDate .EndDate .Current}}</div>
        </div>
        <div class="item-description">{{.Description}}</div>
        {{with .Technologies}}
        <div class="tech-tags">
          {{range .}}<span class="tech-tag">{{.}}</span>{{end}}
        </div>
        {{end}}
        {{with .Achievements}}
        <ul class="achievements">
          {{range .}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
      </div>
      {{end}}
    </div>
{{end}}

{{define "certifications"}}
    <div class="section">
      <h2 class="section-title">证书</h2>
      {{range .Certifications}}
      <div class="cert-item">
        <div class="cert-name">{{.Name}}</div>
        <div class="cert-issuer">{{.Issuer}}</div>
        <div class="cert-date">{{formatMonth .Date}}{{with .ExpiryDate}} - 有效期至 {{formatMonth .}}{{end}}</div>
        {{with .URL}}<div class="cert-link">{{.}}</div>{{end}}
      </div>
      {{end}}
    </div>
{{end}}

{{define "languages"}}
    <div class="section">
      <h2 class="section-title">语言能力</h2>
      {{range .Languages}}
      <div class="lang-item">
        <span class="lang-name">{{.Language}}</span>
        <span class="lang-proficiency">{{.Proficiency}}</span>
      </div>
      {{end}}
    </div>
{{end}}
`

const standardText = pageOpen + standardCSS + pageClose + standardBody
