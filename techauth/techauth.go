// Package techauth gates technician actions behind a shared access code.
//
// The code is a single static secret compared byte for byte. There is no
// hashing, rate limiting or lockout.
package techauth

import (
	"fmt"
	"io"

	"github.com/golang/glog"

	"elevmaint/audit"
)

// TokenScanner is satisfied by a *bufio.Scanner split on words. The console
// and the authorizer share one so that the code is read from the same stream
// as the commands.
type TokenScanner interface {
	Scan() bool
	Text() string
}

type Authorizer struct {
	secret string
	in     TokenScanner
	out    io.Writer
	audit  *audit.Log
}

func New(secret string, in TokenScanner, out io.Writer, auditLog *audit.Log) *Authorizer {
	if auditLog == nil {
		auditLog = audit.Nop()
	}
	return &Authorizer{
		secret: secret,
		in:     in,
		out:    out,
		audit:  auditLog,
	}
}

// Authorize prompts for the access code and reports whether it matched.
// Running out of input counts as a failed attempt.
func (a *Authorizer) Authorize(action string) bool {
	fmt.Fprint(a.out, "\n*** TECHNICIAN AUTHENTICATION REQUIRED ***\n")
	fmt.Fprintf(a.out, "Enter %d-digit technician access code: ", len(a.secret))

	entered := ""
	if a.in.Scan() {
		entered = a.in.Text()
	}

	if entered != "" && entered == a.secret {
		fmt.Fprint(a.out, "Access granted. Technician authenticated.\n")
		glog.Infof("technician authenticated for %s", action)
		a.audit.AuthGranted(action)
		return true
	}

	fmt.Fprint(a.out, "Access denied. Invalid technician code.\n")
	fmt.Fprint(a.out, "Unauthorized access attempt logged.\n")
	glog.Warningf("unauthorized access attempt for %s", action)
	a.audit.AuthDenied(action)
	return false
}
