package models

type ResponseType string

const (
	ResponseTypeStudentRecord ResponseType = "student_record"
	ResponseTypeError         ResponseType = "error"
	ResponseTypePhotoPrompt   ResponseType = "photo_prompt"
	ResponseTypeAdmissions    ResponseType = "admissions"
	ResponseTypeFees          ResponseType = "fees"
	ResponseTypePlacements    ResponseType = "placements"
	ResponseTypeCourses       ResponseType = "courses"
	ResponseTypeFacilities    ResponseType = "facilities"
	ResponseTypeDepartments   ResponseType = "departments"
	ResponseTypeQA            ResponseType = "qa"
	ResponseTypeGreeting      ResponseType = "greeting"
	ResponseTypeGeneral       ResponseType = "general"
	ResponseTypeHelp          ResponseType = "help"
	ResponseTypeContact       ResponseType = "contact"
)

type Response struct {
	Text string
	Type ResponseType
}
