package services

import (
	"fmt"
	"html"
	"log"
	"os"
	"strings"

	"github.com/Spacespixel/ppsasset-new/config"
	"github.com/Spacespixel/ppsasset-new/models"
	"github.com/Spacespixel/ppsasset-new/utils"
)

// NotifyNewLead mails the sales team about a new registration. Delivery is
// best effort: the lead is already persisted, so a mail failure is logged
// and never surfaced to the customer.
func NotifyNewLead(reference string, req models.RegistrationRequest) {
	recipients := strings.Split(os.Getenv("SALES_NOTIFY_TO"), ",")
	to := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r != "" {
			to = append(to, r)
		}
	}
	if len(to) == 0 {
		return
	}

	subject := fmt.Sprintf("ลูกค้าลงทะเบียนใหม่ %s (%s)", req.ProjectName, reference)

	var b strings.Builder
	b.WriteString("<h3>มีลูกค้าลงทะเบียนความสนใจโครงการ</h3>")
	b.WriteString("<table cellpadding=\"4\">")
	writeRow(&b, "หมายเลขอ้างอิง", reference)
	writeRow(&b, "โครงการ", req.ProjectName)
	writeRow(&b, "ชื่อ", strings.TrimSpace(req.FirstName+" "+req.LastName))
	writeRow(&b, "โทรศัพท์", req.TelNo)
	writeRow(&b, "อีเมล", req.Email)
	writeRow(&b, "งบประมาณ", req.Budget)
	writeRow(&b, "จังหวัด", req.Province)
	if req.AppointmentDate != nil {
		appointment := utils.FormatThaiDatePtr(req.AppointmentDate)
		if req.AppointmentTime != "" {
			appointment += " " + req.AppointmentTime
		}
		writeRow(&b, "นัดหมายเข้าชม", appointment)
	}
	if req.Remark != "" {
		writeRow(&b, "หมายเหตุ", req.Remark)
	}
	b.WriteString("</table>")

	if err := config.SendMail(to, subject, b.String()); err != nil {
		log.Printf("registration: lead notification for %s failed: %v", reference, err)
	}
}

func writeRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
}
