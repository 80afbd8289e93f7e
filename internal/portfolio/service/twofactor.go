package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpPeriod = 30
	// Accept codes up to two steps either side of now, tolerating clock
	// drift between the server and the authenticator app.
	totpSkew = 2

	qrImageSize = 200
)

// TwoFactorEnrollment is the material handed to the user during 2FA setup.
// Nothing is persisted until the first code verifies.
type TwoFactorEnrollment struct {
	Secret         string
	QRCode         string // PNG data URL of the otpauth:// QR
	ManualEntryKey string
}

type TwoFactorService struct {
	Issuer string
}

// Enroll generates a fresh TOTP secret for the account and renders the QR
// code the authenticator app scans.
func (s *TwoFactorService) Enroll(accountEmail string) (TwoFactorEnrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: accountEmail,
		Period:      totpPeriod,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return TwoFactorEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	img, err := key.Image(qrImageSize, qrImageSize)
	if err != nil {
		return TwoFactorEnrollment{}, fmt.Errorf("failed to render QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return TwoFactorEnrollment{}, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return TwoFactorEnrollment{
		Secret:         key.Secret(),
		QRCode:         "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		ManualEntryKey: key.Secret(),
	}, nil
}

// ValidateCode checks a six-digit code against a secret within the skew
// window.
func (s *TwoFactorService) ValidateCode(secret, code string) bool {
	valid, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && valid
}
