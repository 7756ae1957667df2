package model

import "time"

// OTPWindow is how long a one-time password stays valid after creation.
// The window is a rolling deadline: it is re-checked at verification
// time, not only when the code is generated.
const OTPWindow = 10 * time.Minute

// PasswordOTP models a row in the `password_otps` table.  A row is an
// append-only proof of a password-reset request.  Several unused rows
// may exist for the same email at the same time; verification matches
// on the (email, code) pair, so the last valid one wins.  Rows are
// never deleted, only flipped to used.
//
// Fields:
//  ID        – primary key identifier.
//  Email     – address the code was sent to (lowercased).
//  Code      – 6-digit numeric code, leading zeros preserved.
//  Used      – true once the code was spent on a successful reset.
//  CreatedAt – UTC creation timestamp; validity is CreatedAt + OTPWindow.
type PasswordOTP struct {
	ID        uint64    // password_otps.id
	Email     string    // password_otps.email
	Code      string    // password_otps.otp_code
	Used      bool      // password_otps.used
	CreatedAt time.Time // password_otps.created_at
}

// Active reports whether the code can still be redeemed at instant now.
func (o PasswordOTP) Active(now time.Time) bool {
	return !o.Used && !now.After(o.CreatedAt.Add(OTPWindow))
}
