package service

import (
	"bytes"
	"fmt"
	"html/template"

	"expenses/config"

	"gopkg.in/gomail.v2"
)

// MailSender 邮件发送方，gomail.Dialer 满足该接口
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ReportMailer 月度报告邮件服务
type ReportMailer struct {
	cfg    *config.EmailConfig
	sender MailSender
}

// NewReportMailer 创建邮件服务，使用配置中的 SMTP 服务器
func NewReportMailer(cfg *config.EmailConfig) *ReportMailer {
	return &ReportMailer{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// NewReportMailerWithSender 使用指定发送方创建邮件服务
func NewReportMailerWithSender(cfg *config.EmailConfig, sender MailSender) *ReportMailer {
	return &ReportMailer{cfg: cfg, sender: sender}
}

// Enabled 邮件服务是否启用
func (s *ReportMailer) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled
}

// SendMonthlyReport 发送某月的类别汇总
func (s *ReportMailer) SendMonthlyReport(to string, period Period, breakdown Breakdown) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}

	body, err := renderReport(period, breakdown)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Expense report %s", period))
	m.SetBody("text/html", body)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        table { width: 100%; border-collapse: collapse; }
        th, td { padding: 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
        td.num { text-align: right; }
        .total td { font-weight: bold; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Expense report {{.Period}}</h1>
        </div>
        <div class="content">
            {{if .Breakdown.Categories}}
            <table>
                <tr><th>Category</th><th>Items</th><th>Total</th></tr>
                {{range .Breakdown.Categories}}
                <tr><td>{{.Category}}</td><td class="num">{{.Count}}</td><td class="num">{{money .Total}}</td></tr>
                {{end}}
                <tr class="total"><td>Total</td><td class="num">{{.Breakdown.Count}}</td><td class="num">{{money .Breakdown.Total}}</td></tr>
            </table>
            {{else}}
            <p>No expenses recorded this month.</p>
            {{end}}
        </div>
        <div class="footer">
            <p>This message was sent automatically, please do not reply.</p>
        </div>
    </div>
</body>
</html>
`))

func renderReport(period Period, breakdown Breakdown) (string, error) {
	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, struct {
		Period    Period
		Breakdown Breakdown
	}{period, breakdown})
	if err != nil {
		return "", fmt.Errorf("生成报告失败: %w", err)
	}
	return buf.String(), nil
}
