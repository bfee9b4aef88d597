package validators

import (
	"retroBoard/internal/errs"
	"retroBoard/internal/models"
)

func ValidateJoinBoard(payload *models.JoinBoardPayload) []error {
	var errors []error
	if payload == nil {
		errors = append(errors, errs.ErrInvalidEventPayload)
		return errors
	}

	if payload.BoardId == "" {
		errors = append(errors, errs.ErrInvalidBoardId)
	}
	if payload.User.Id == "" {
		errors = append(errors, errs.ErrInvalidUserId)
	}
	if payload.User.Name == "" {
		errors = append(errors, errs.ErrInvalidUserName)
	}
	return errors
}

func ValidateObjectType(objectType string) bool {
	switch objectType {
	case models.OBJECT_TYPE_RECTANGLE,
		models.OBJECT_TYPE_CIRCLE,
		models.OBJECT_TYPE_LINE,
		models.OBJECT_TYPE_IMAGE,
		models.OBJECT_TYPE_VIDEO:
		return true
	}
	return false
}

func ValidateCreateBoard(request *models.CreateBoardRequest) []error {
	var errors []error
	if request == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if request.Template != nil {
		for _, section := range request.Template.Sections {
			if section.Title == "" || section.Color == "" {
				errors = append(errors, errs.ErrInvalidTemplate)
				break
			}
		}
	}
	return errors
}
