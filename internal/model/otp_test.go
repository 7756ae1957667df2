package model

import (
	"testing"
	"time"
)

func TestPasswordOTP_Active(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name string
		otp  PasswordOTP
		want bool
	}{
		{"fresh unused", PasswordOTP{CreatedAt: now.Add(-time.Minute)}, true},
		{"at the edge of the window", PasswordOTP{CreatedAt: now.Add(-OTPWindow)}, true},
		{"expired by a minute", PasswordOTP{CreatedAt: now.Add(-OTPWindow - time.Minute)}, false},
		{"fresh but used", PasswordOTP{Used: true, CreatedAt: now.Add(-time.Minute)}, false},
		{"expired and used", PasswordOTP{Used: true, CreatedAt: now.Add(-time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.otp.Active(now); got != tt.want {
				t.Fatalf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}
