package service

const (
	PhotoPromptMessage      = "📸 Upload a student photo using the camera button above to get student records!"
	ThanksMessage           = "You're welcome! 😊 If you have more questions about BIET, feel free to ask!"
	NoStudentRecognized     = "❌ No student recognized. Try a clearer photo."
	NoStudentRecord         = "❌ No student record found."
	ErrorApologyMessage     = "Sorry, I encountered an error. Please try again."
	defaultGreetingMessage  = "Hello! 👋 I'm the BIET assistant. Ask me about admissions, fees, placements, courses, facilities or departments."
	defaultFallbackMessage  = "I'm not sure about that. Try asking about admissions, fees, placements, courses, facilities or departments."
	noCategoryInfoMessage   = "❌ No information available about %s."
	semesterMarksEmptyLabel = "No marks data available"
)

const HelpMessage = `**💡 BIET Assistant Help Guide**

**🎤 Voice Input:**
• Click the microphone icon for voice input
• Speak naturally about admissions, fees, placements
• Edit the transcribed text before sending

**📸 Photo Recognition:**
• Upload student photos for instant information
• Get academic records and contact details

**💬 Common Queries:**
• **Admission process** and eligibility criteria
• **Fee structure** and scholarship information
• **Placement statistics** and top recruiters
• **Course details** and department information
• **Hostel facilities** and campus amenities

**🏫 Quick Actions:**
• Use the quick question chips for common queries
• Upload photos for student recognition
• Use voice input for hands-free operation`

const ContactMessage = `**📞 Contact Information**

**Bapuji Institute of Engineering & Technology**

• **📍 Address:** Shamanur Road, Davangere - 577004, Karnataka, India
• **📞 Phone:** +91-8192-222245, +91-8192-222246
• **📧 Email:** biet@bietdvg.edu, principal@bietdvg.edu
• **🌐 Website:** www.bietdvg.edu
• **🕒 Office Hours:** 9:30 AM - 5:30 PM (Monday to Friday)

**Admission Office:**
• 📞 Phone: +91-8192-222245
• 📧 Email: admissions@bietdvg.edu

**For specific department inquiries, please mention the department name.**`

// Suggestions are offered to clients as quick questions.
var Suggestions = []string{
	"What is the admission process for BE?",
	"Tell me about fee structure",
	"Which companies visit for placements?",
	"What facilities are available?",
	"How is Computer Science department?",
	"Is there scholarship available?",
}
