package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/taskloom/taskseed/internal/model"
	"github.com/taskloom/taskseed/internal/randutil"
	"github.com/taskloom/taskseed/internal/store"
)

// stageComments gives a bounded subset of tasks conversation activity.
// Not every task gets comments; sparse engagement reads more like a real
// workspace than a uniform spray.
func stageComments(ctx context.Context, p *Pipeline) error {
	count := p.opts.CommentTasks
	if count > len(p.tasks) {
		count = len(p.tasks)
	}
	color.Cyan("  📝 Seeding comments on %d tasks...", count)

	if count == 0 {
		color.Green("  ✅ no tasks to comment on, skipping")
		return nil
	}

	for _, task := range randutil.SampleN(p.rng, p.tasks, count) {
		if err := p.commentOnTask(ctx, task); err != nil {
			return err
		}
	}

	color.Green("  ✅ comments seeded successfully")
	return nil
}

func (p *Pipeline) commentOnTask(ctx context.Context, task *model.Task) error {
	commentCount := p.rng.Between(2, 10)
	for i := 0; i < commentCount; i++ {
		comment := &model.Comment{
			TaskID:   task.ID,
			AuthorID: randutil.Pick(p.rng, p.users).ID,
			Body:     randutil.Pick(p.rng, commentBodies),
		}
		id, err := p.createComment(ctx, comment)
		if err != nil {
			return err
		}
		comment.ID = id

		// 20% of top-level comments get exactly one reply. Replies never
		// get replies of their own; nesting stops at one level.
		if p.rng.Chance(0.2) {
			reply := &model.Comment{
				TaskID:          task.ID,
				AuthorID:        randutil.Pick(p.rng, p.users).ID,
				Body:            randutil.Pick(p.rng, replyBodies),
				ParentCommentID: &comment.ID,
			}
			if _, err := p.createComment(ctx, reply); err != nil {
				return err
			}
		}

		if p.rng.Chance(0.3) {
			reactors := randutil.SampleN(p.rng, p.users, p.rng.Between(1, 3))
			for _, u := range reactors {
				r := &model.CommentReaction{
					CommentID: comment.ID,
					UserID:    u.ID,
					Emoji:     randutil.Pick(p.rng, reactionEmojis),
				}
				if _, err := p.create(ctx, store.CommentReactions, r.Attrs()); err != nil {
					return fmt.Errorf("create reaction: %w", err)
				}
			}
		}
	}
	return nil
}

// createComment rejects nesting deeper than one level at creation time
// instead of trusting callers never to ask for it.
func (p *Pipeline) createComment(ctx context.Context, c *model.Comment) (string, error) {
	if c.ParentCommentID != nil {
		parent, ok := p.commentsByID[*c.ParentCommentID]
		if !ok {
			return "", fmt.Errorf("reply references unknown comment %s", *c.ParentCommentID)
		}
		if parent.ParentCommentID != nil {
			return "", fmt.Errorf("reply to %s would nest deeper than one level", *c.ParentCommentID)
		}
		if parent.TaskID != c.TaskID {
			return "", fmt.Errorf("reply to %s crosses tasks", *c.ParentCommentID)
		}
	}

	id, err := p.create(ctx, store.Comments, c.Attrs())
	if err != nil {
		return "", fmt.Errorf("create comment: %w", err)
	}
	c.ID = id
	p.commentsByID[id] = c
	return id, nil
}
