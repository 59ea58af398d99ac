package templates

import "fmt"

// RenderDailyReportEmail generates the HTML body for the scheduled daily
// report delivery. The PDF itself travels as an attachment; the body only
// carries the headline counts.
func RenderDailyReportEmail(reportDate string, consultations, appointments int) string {
	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>IMD-Care Daily Report</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f6f8; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: #3f51b5; padding: 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 22px; font-weight: 700; }
    .content { padding: 30px; color: #1f2937; }
    .metric-box { background: #eef1fb; border: 1px solid #c5cae9; border-radius: 8px; padding: 16px 20px; margin: 12px 0; }
    .metric-box span { color: #3f51b5; font-weight: 700; }
    .footer { padding: 20px 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>IMD-Care Daily Report</h1>
    </div>
    <div class="content">
      <p>The administrative daily report for <strong>%s</strong> is attached as a PDF.</p>
      <div class="metric-box">Medical consultations: <span>%d</span></div>
      <div class="metric-box">Clinic appointments: <span>%d</span></div>
      <p>Full detail tables and summaries are in the attachment.</p>
    </div>
    <div class="footer">
      <p>This report was generated automatically by the IMD-Care reporting service.</p>
    </div>
  </div>
</body>
</html>`, reportDate, consultations, appointments)
}
