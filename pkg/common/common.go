package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"

	"agora/pkg/errs"
)

var validate = validator.New()

// NewID generates an opaque unique identifier.
func NewID() string {
	return uuid.NewString()
}

func Now() time.Time {
	return time.Now().UTC()
}

func NormalizeText(s string) string {
	return strings.TrimSpace(s)
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func RandStringRunes(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rand.Intn(len(letterRunes))]
	}
	return string(b)
}

func HashPass(plainPassword, salt string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), []byte(salt), 1, 64*1024, 4, 32)
	res := []byte(salt)
	return append(res, hashedPass...)
}

func ParseReqBody(body io.Reader, ptr interface{}) error {
	err := json.NewDecoder(body).Decode(ptr)
	if err != nil {
		return err
	}
	return nil
}

// ValidateReq runs struct tag validation and reports the first failing
// field, the same way the handlers surface service validation errors.
func ValidateReq(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errs.InvalidArgument(fmt.Sprintf("%s is required", fieldErrs[0].Field()))
	}
	return errs.InvalidArgument("Validation failed")
}

func WriteRespJSON(w http.ResponseWriter, data interface{}) {
	resp, err := json.Marshal(data)
	if err != nil {
		log.Println("common: JSON marshaling failed", err)
		errs.Write(w, errs.Internal("Internal server error"))
		return
	}

	_, err = w.Write(resp)
	if err != nil {
		log.Println("common: failed writing response", err)
	}
}
