package delivery

import "fmt"

// AssessmentMessage builds the email carrying a rendered assessment
// report for the given user.
func AssessmentMessage(name, email string, pdf []byte) Message {
	return Message{
		To:      email,
		Subject: fmt.Sprintf("Mindstyle Assessment Results for %s", name),
		Body: fmt.Sprintf(
			"Dear %s,\n\nAttached is your Mindstyle Assessment PDF.\n\nBest regards,\nErgos Mind Team", name),
		AttachmentName: fmt.Sprintf("%s_Mindstyle_Assessment.pdf", name),
		Attachment:     pdf,
	}
}
