package utils

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Default cost for bcrypt password hashing
const bcryptCost = 10

const minPasswordLength = 6

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// PasswordProblems returns a message per broken rule, or nil for an acceptable password.
func PasswordProblems(password string) []string {
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			hasSymbol = true
		}
	}

	var problems []string
	if len([]rune(password)) < minPasswordLength {
		problems = append(problems, "Passwords must be at least 6 characters.")
	}
	if !hasSymbol {
		problems = append(problems, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		problems = append(problems, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		problems = append(problems, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		problems = append(problems, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return problems
}
