package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/saulo-duarte/chat-educacional/internal/config"
)

const maxBodyBytes = 64 << 10

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(s Service) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{service: s, validate: v}
}

// Ask godoc
// @Summary      Ask the assistant a question
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      QuestionRequest  true  "Student question"
// @Success      200      {object}  AnswerResponse
// @Failure      400      {object}  config.ErrorResponse
// @Failure      422      {object}  config.ErrorResponse
// @Failure      500      {object}  config.ErrorResponse
// @Router       /api/ask [post]
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.WithError(err).Warn("Question failed validation")
		config.Error(w, http.StatusUnprocessableEntity, "invalid question", validationDetail(err))
		return
	}

	answer, err := h.service.Ask(r.Context(), req)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "error processing question", err.Error())
		return
	}

	config.JSON(w, http.StatusOK, answer)
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "min":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
