package permission

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type Scope string

const (
	ScopeFineLocation   Scope = "location.fine"
	ScopeCoarseLocation Scope = "location.coarse"
)

var LocationScopes = []Scope{ScopeFineLocation, ScopeCoarseLocation}

type Report struct {
	Granted           []Scope
	PermanentlyDenied bool
}

func (r Report) AllGranted(scopes ...Scope) bool {
	for _, want := range scopes {
		found := false
		for _, got := range r.Granted {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type Prompter interface {
	Request(ctx context.Context, scopes ...Scope) (Report, error)
}

type Policy string

const (
	PolicyGranted Policy = "granted"
	PolicyDenied  Policy = "denied"
	PolicyAsk     Policy = "ask"
)

func ParsePolicy(value string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(value))); p {
	case PolicyGranted, PolicyDenied, PolicyAsk:
		return p, nil
	case "":
		return PolicyAsk, nil
	default:
		return "", fmt.Errorf("unknown location permission policy %q", value)
	}
}

// PolicyPrompter answers every request from a fixed policy. A denied policy
// is reported as permanent, the user cannot change it at runtime.
type PolicyPrompter struct {
	granted bool
}

func NewPolicyPrompter(granted bool) *PolicyPrompter {
	return &PolicyPrompter{granted: granted}
}

func (p *PolicyPrompter) Request(_ context.Context, scopes ...Scope) (Report, error) {
	if p.granted {
		return Report{Granted: append([]Scope(nil), scopes...)}, nil
	}
	return Report{PermanentlyDenied: true}, nil
}

// InteractivePrompter asks on a terminal. "y" grants, "never" denies for
// the rest of the process, anything else denies this request only.
type InteractivePrompter struct {
	mu      sync.Mutex
	in      *bufio.Reader
	out     io.Writer
	pending chan answer
	granted bool
	never   bool
}

type answer struct {
	line string
	err  error
}

func NewInteractivePrompter(in io.Reader, out io.Writer) *InteractivePrompter {
	return &InteractivePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *InteractivePrompter) Request(ctx context.Context, scopes ...Scope) (Report, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.never {
		return Report{PermanentlyDenied: true}, nil
	}
	if p.granted {
		return Report{Granted: append([]Scope(nil), scopes...)}, nil
	}

	names := make([]string, len(scopes))
	for i, s := range scopes {
		names[i] = string(s)
	}
	fmt.Fprintf(p.out, "Allow access to your location (%s)? [y/N/never]: ", strings.Join(names, ", "))

	// a read abandoned by a canceled request is picked up by the next one
	if p.pending == nil {
		answers := make(chan answer, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			answers <- answer{line: line, err: err}
		}()
		p.pending = answers
	}

	var a answer
	select {
	case a = <-p.pending:
		p.pending = nil
	case <-ctx.Done():
		return Report{}, ctx.Err()
	}

	if a.err != nil && a.line == "" {
		if a.err == io.EOF {
			return Report{}, nil
		}
		return Report{}, fmt.Errorf("failed to read permission answer: %w", a.err)
	}

	switch strings.ToLower(strings.TrimSpace(a.line)) {
	case "y", "yes":
		p.granted = true
		return Report{Granted: append([]Scope(nil), scopes...)}, nil
	case "never":
		p.never = true
		return Report{PermanentlyDenied: true}, nil
	default:
		return Report{}, nil
	}
}
