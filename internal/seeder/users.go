package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskloom/taskseed/internal/model"
	"github.com/taskloom/taskseed/internal/randutil"
	"github.com/taskloom/taskseed/internal/store"
)

// The first seeded user always has known credentials so QA and integration
// tests have a guaranteed login.
const (
	KnownUserEmail    = "test@example.com"
	KnownUserPassword = "password123"

	// Every other generated user shares this password. One bcrypt hash is
	// computed and reused; hashing per user adds nothing to seed data.
	sharedPassword = "taskloom123"
)

func stageUsers(ctx context.Context, p *Pipeline) error {
	color.Cyan("  📝 Seeding users (%d records)...", p.opts.Users)

	knownHash, err := bcrypt.GenerateFromPassword([]byte(KnownUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash known-user password: %w", err)
	}
	sharedHash, err := bcrypt.GenerateFromPassword([]byte(sharedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash shared password: %w", err)
	}

	known := &model.User{
		Email:        KnownUserEmail,
		Name:         "Test User",
		Initials:     initialsOf("Test User"),
		AvatarURL:    "https://avatars.taskloom.dev/test-user.png",
		PasswordHash: string(knownHash),
		Theme:        "system",
		Notifications: model.NotificationPrefs{
			TaskAssigned:  true,
			TaskCompleted: true,
			CommentAdded:  true,
			DueDateSoon:   true,
		},
	}
	p.emails.Claim(known.Email)
	if err := p.createUser(ctx, known); err != nil {
		return err
	}

	for i := 1; i < p.opts.Users; i++ {
		first := randutil.Pick(p.rng, firstNames)
		last := randutil.Pick(p.rng, lastNames)
		name := first + " " + last

		u := &model.User{
			Email:        p.emails.Generate(p.rng, first, last),
			Name:         name,
			Initials:     initialsOf(name),
			AvatarURL:    fmt.Sprintf("https://avatars.taskloom.dev/%d.png", i),
			PasswordHash: string(sharedHash),
			Theme:        randutil.Pick(p.rng, themes),
			Notifications: model.NotificationPrefs{
				TaskAssigned:   true, // always on, so assignment flows show up in demos
				TaskCompleted:  p.rng.Chance(0.5),
				CommentAdded:   p.rng.Chance(0.5),
				DueDateSoon:    p.rng.Chance(0.5),
				WeeklyDigest:   p.rng.Chance(0.5),
				MentionedInDoc: p.rng.Chance(0.5),
			},
		}
		if err := p.createUser(ctx, u); err != nil {
			return err
		}
	}

	color.Green("  ✅ users seeded successfully")
	return nil
}

func (p *Pipeline) createUser(ctx context.Context, u *model.User) error {
	id, err := p.create(ctx, store.Users, u.Attrs())
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.Email, err)
	}
	u.ID = id
	p.users = append(p.users, u)
	return nil
}

// initialsOf takes the first letters of up to two name tokens, upper-cased.
func initialsOf(name string) string {
	var b strings.Builder
	for i, token := range strings.Fields(name) {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(token[:1]))
	}
	return b.String()
}
