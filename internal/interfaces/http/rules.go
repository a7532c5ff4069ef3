package http

import (
	"github.com/jhoicas/straydog-api/pkg/validation"
)

func body(field, tag, msg string) validation.Rule {
	return validation.Rule{Field: field, Source: validation.Body, Tag: tag, Message: msg}
}

func trimmed(field, msg string) validation.Rule {
	return validation.Rule{Field: field, Source: validation.Body, Tag: "required", Message: msg, Trim: true}
}

// optional checks a body field only when the request carries it. Explicit
// nulls read as empty and pass the omitempty enum tags, the update keeps them.
func optional(field, tag, msg string) validation.Rule {
	return validation.Rule{Field: field, Source: validation.Body, Tag: tag, Message: msg, Optional: true}
}

func optionalTrimmed(field, msg string) validation.Rule {
	return validation.Rule{Field: field, Source: validation.Body, Tag: "required", Message: msg, Trim: true, Optional: true}
}

// Declared rule sets, one per route shape.
var (
	RegisterRules = validation.NewRuleSet("register",
		trimmed("name", "Name is required"),
		body("email", "required,email", "Valid email is required"),
		body("password", "min=6", "Password must be at least 6 characters"),
	)

	LoginRules = validation.NewRuleSet("login",
		body("email", "required,email", "Valid email is required"),
		body("password", "required", "Password is required"),
	)

	CreateDogReportRules = validation.NewRuleSet("dog-report.create",
		trimmed("description", "Description is required"),
		body("condition", "oneof=HEALTHY INJURED SICK MALNOURISHED CRITICAL", "Invalid condition"),
		trimmed("location", "Location is required"),
		trimmed("reporterName", "Reporter name is required"),
		trimmed("reporterContact", "Reporter contact is required"),
	)

	UpdateDogReportRules = validation.NewRuleSet("dog-report.update",
		optionalTrimmed("description", "Description is required"),
		optional("condition", "omitempty,oneof=HEALTHY INJURED SICK MALNOURISHED CRITICAL", "Invalid condition"),
		optional("status", "omitempty,oneof=PENDING ASSIGNED IN_PROGRESS RESCUED COMPLETED CLOSED", "Invalid status"),
		optionalTrimmed("location", "Location is required"),
		optionalTrimmed("reporterName", "Reporter name is required"),
		optionalTrimmed("reporterContact", "Reporter contact is required"),
		optional("priority", "omitempty,intmin=1,intmax=5", "Priority must be between 1 and 5"),
	)

	AssignVolunteerRules = validation.NewRuleSet("dog-report.assign",
		body("volunteerId", "objectid", "Invalid volunteer ID"),
		trimmed("volunteerName", "Volunteer name is required"),
	)

	ContentRules = validation.NewRuleSet("content",
		trimmed("content", "Content is required"),
	)

	CreateAdoptionDogRules = validation.NewRuleSet("adoption.create",
		trimmed("name", "Dog name is required"),
		body("gender", "oneof=MALE FEMALE UNKNOWN", "Invalid gender"),
		body("size", "oneof=SMALL MEDIUM LARGE", "Invalid size"),
	)

	UpdateAdoptionDogRules = validation.NewRuleSet("adoption.update",
		optionalTrimmed("name", "Dog name is required"),
		optional("gender", "omitempty,oneof=MALE FEMALE UNKNOWN", "Invalid gender"),
		optional("size", "omitempty,oneof=SMALL MEDIUM LARGE", "Invalid size"),
		optional("status", "omitempty,oneof=AVAILABLE PENDING ADOPTED", "Invalid status"),
		optional("age", "omitempty,intmin=0", "Age must be a non-negative number of months"),
	)

	AdoptionStatusRules = validation.NewRuleSet("adoption.status",
		body("status", "oneof=AVAILABLE PENDING ADOPTED", "Invalid status"),
	)

	CreateDonationRules = validation.NewRuleSet("donation.create",
		trimmed("donorName", "Donor name is required"),
		body("donorEmail", "required,email", "Valid email is required"),
		body("amount", "required,numeric,gtzero", "Amount must be greater than 0"),
		body("paymentMethod", "oneof=UPI PAYPAL CREDIT_CARD DEBIT_CARD BANK_TRANSFER", "Invalid payment method"),
	)

	DonationStatusRules = validation.NewRuleSet("donation.status",
		body("status", "oneof=PENDING COMPLETED FAILED REFUNDED", "Invalid status"),
	)

	VolunteerRegistrationRules = validation.NewRuleSet("volunteer.register",
		trimmed("name", "Name is required"),
		trimmed("contact", "Contact is required"),
		body("email", "required,email", "Valid email is required"),
		trimmed("area", "Area is required"),
		body("role", "oneof=FEEDER RESCUER VET TRANSPORT FOSTER", "Invalid role"),
	)

	VolunteerStatusRules = validation.NewRuleSet("volunteer.status",
		body("status", "oneof=PENDING APPROVED ACTIVE INACTIVE REJECTED", "Invalid status"),
	)

	CreateVolunteerTaskRules = validation.NewRuleSet("volunteer-task.create",
		body("volunteerId", "objectid", "Valid volunteer ID is required"),
		trimmed("title", "Task title is required"),
		optional("priority", "omitempty,oneof=LOW MEDIUM HIGH URGENT", "Invalid priority"),
		optional("dueDate", "omitempty,isodate", "Invalid due date"),
	)

	UpdateVolunteerTaskRules = validation.NewRuleSet("volunteer-task.update",
		optionalTrimmed("title", "Task title is required"),
		optional("priority", "omitempty,oneof=LOW MEDIUM HIGH URGENT", "Invalid priority"),
		optional("status", "omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED", "Invalid status"),
		optional("dueDate", "omitempty,isodate", "Invalid due date"),
	)

	TaskStatusRules = validation.NewRuleSet("volunteer-task.status",
		body("status", "oneof=PENDING IN_PROGRESS COMPLETED CANCELLED", "Invalid status"),
	)

	CreateVaccinationRules = validation.NewRuleSet("vaccination.create",
		trimmed("dogName", "Dog name is required"),
	)

	VaccinationRecordRules = validation.NewRuleSet("vaccination.record",
		trimmed("vaccineName", "Vaccine name is required"),
		body("type", "oneof=RABIES DHPP BORDETELLA LEPTOSPIROSIS LYME DEWORMING OTHER", "Invalid vaccine type"),
		body("dateAdministered", "isodate", "Valid administration date is required"),
	)

	CreateForumPostRules = validation.NewRuleSet("forum.create",
		trimmed("title", "Title is required"),
		trimmed("content", "Content is required"),
		body("category", "oneof=GENERAL ADOPTION RESCUE HEALTH BEHAVIOR LOST_FOUND SUCCESS_STORIES ANNOUNCEMENTS", "Invalid category"),
	)

	PaginationRules = validation.NewRuleSet("pagination",
		validation.Rule{Field: "page", Source: validation.Query, Tag: "intmin=1", Message: "Page must be a positive integer", Optional: true},
		validation.Rule{Field: "limit", Source: validation.Query, Tag: "intmin=1,intmax=100", Message: "Limit must be between 1 and 100", Optional: true},
	)

	IDRules = validation.NewRuleSet("id",
		validation.Rule{Field: "id", Source: validation.Params, Tag: "objectid", Message: "Invalid ID format"},
	)

	UserIDRules = validation.NewRuleSet("user-id",
		validation.Rule{Field: "userId", Source: validation.Params, Tag: "objectid", Message: "Invalid ID format"},
	)

	VolunteerIDRules = validation.NewRuleSet("volunteer-id",
		validation.Rule{Field: "volunteerId", Source: validation.Params, Tag: "objectid", Message: "Invalid ID format"},
	)
)

// RuleSets lists every declared set, for a startup check with Validator.Verify.
func RuleSets() []validation.RuleSet {
	return []validation.RuleSet{
		RegisterRules, LoginRules,
		CreateDogReportRules, UpdateDogReportRules, AssignVolunteerRules, ContentRules,
		CreateAdoptionDogRules, UpdateAdoptionDogRules, AdoptionStatusRules,
		CreateDonationRules, DonationStatusRules,
		VolunteerRegistrationRules, VolunteerStatusRules,
		CreateVolunteerTaskRules, UpdateVolunteerTaskRules, TaskStatusRules,
		CreateVaccinationRules, VaccinationRecordRules,
		CreateForumPostRules,
		PaginationRules, IDRules, UserIDRules, VolunteerIDRules,
	}
}
