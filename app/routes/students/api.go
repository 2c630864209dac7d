package students

import (
	"database/sql"
	"errors"
	"log"

	"github.com/Rage-Op/CKA-Backend/app/database"
	"github.com/Rage-Op/CKA-Backend/app/models"
	"github.com/Rage-Op/CKA-Backend/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetStudentsAPI returns all students, descending by studentId.
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	return listStudents(c, db, false)
}

// GetAscendingStudentsAPI returns all students, ascending by studentId.
func GetAscendingStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	return listStudents(c, db, true)
}

func listStudents(c *fiber.Ctx, db *sql.DB, ascending bool) error {
	students, err := database.GetStudents(db, ascending)
	if err != nil {
		log.Printf("Error fetching student data: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch student data")
	}
	if students == nil {
		students = []*models.Student{}
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"students": students,
		"count":    len(students),
	})
}

// SearchStudentAPI returns a single student by studentId.
func SearchStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := database.GetStudentByID(db, studentID)
	if errors.Is(err, database.ErrStudentNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch student data")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// EnrollStudentRequest carries the identity fields of a new admission. The
// studentId, fee snapshot and ledger seeds are all assigned server-side.
type EnrollStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	Gender     string `json:"gender" validate:"required"`
	Class      string `json:"class" validate:"required"`
	DOB        string `json:"DOB"`
	FatherName string `json:"fatherName"`
	MotherName string `json:"motherName"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	Transport  bool   `json:"transport"`
	Diet       bool   `json:"diet"`
}

// EnrollStudentAPI admits a new student. The fee fields are snapshotted from
// the current Settings; a student cannot be enrolled without a fee schedule.
func EnrollStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields: "+err.Error())
	}

	settings, err := database.GetSettings(db)
	if errors.Is(err, database.ErrSettingsMissing) {
		return fiber.NewError(fiber.StatusInternalServerError, "Fee schedule not initialized")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not fetch settings")
	}

	monthlyFees, err := settings.MonthlyFeeForClass(req.Class)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	admitDate, err := services.TodayBS()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not determine admission date")
	}

	student := &models.Student{
		Name:          req.Name,
		Gender:        req.Gender,
		Class:         req.Class,
		DOB:           req.DOB,
		AdmitDate:     admitDate,
		FatherName:    req.FatherName,
		MotherName:    req.MotherName,
		Contact:       req.Contact,
		Address:       req.Address,
		Transport:     req.Transport,
		Diet:          req.Diet,
		MonthlyFees:   monthlyFees,
		TransportFees: settings.Transport,
		DietFees:      settings.Diet,
		ExamFees:      settings.Exam,
	}
	student.SeedLedger()

	if err := database.CreateStudent(db, student); err != nil {
		log.Printf("Error adding student: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not add a new student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student added successfully",
	})
}

// UpdateStudentAPI applies a partial edit to a student's identity fields and
// optionally corrects the old-due seed entry. Ledger arrays and fee totals
// cannot be written directly.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var updates database.StudentUpdate
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	err = database.UpdateStudent(db, studentID, updates)
	if errors.Is(err, database.ErrStudentNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		log.Printf("Error updating student %d: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not update student info")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student data updated successfully",
	})
}

// DeleteStudentAPI removes a student. Backups keep their copy until the next
// snapshot replaces them.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	err = database.DeleteStudent(db, studentID)
	if errors.Is(err, database.ErrStudentNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not delete student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}

// CreditRequest records a payment or discount against a student.
type CreditRequest struct {
	Amount *int64 `json:"amount" validate:"required,gte=0"`
	Bill   string `json:"bill" validate:"required"`
}

// AddCreditAPI appends a credit entry to a student's ledger and resums the
// credit total.
func AddCreditAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var req CreditRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Amount and bill are required: "+err.Error())
	}

	date, err := services.TodayBS()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not determine entry date")
	}

	student, err := services.AddCredit(db, studentID, *req.Amount, req.Bill, date)
	if errors.Is(err, database.ErrStudentNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		log.Printf("Error adding credit for student %d: %v", studentID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Could not add credit entry")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Credit entry added successfully",
	})
}
