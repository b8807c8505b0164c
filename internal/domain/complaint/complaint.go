package complaint

import (
	"fmt"
	"strings"
	"time"

	vo "resolveit/internal/domain/complaint/valueobjects"
	"resolveit/internal/shared/validation"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Complaint represents a complaint aggregate root.
type Complaint struct {
	id             uint
	userID         uint
	title          string
	description    string
	category       vo.Category
	priority       vo.Priority
	status         vo.Status
	assigneeID     *uint
	resolutionNote string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewComplaint creates a new complaint. Every new complaint starts pending.
func NewComplaint(userID uint, title, description string, category vo.Category, priority vo.Priority) (*Complaint, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	title = validation.SanitizeInput(title)
	if !validation.IsValidText(title, 1, maxTitleLength) {
		return nil, fmt.Errorf("title must be between 1 and %d characters", maxTitleLength)
	}

	description = validation.SanitizeInput(description)
	if !validation.IsValidText(description, 1, maxDescriptionLength) {
		return nil, fmt.Errorf("description must be between 1 and %d characters", maxDescriptionLength)
	}

	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now().UTC()
	return &Complaint{
		userID:      userID,
		title:       title,
		description: description,
		category:    category,
		priority:    priority,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructComplaint reconstructs a complaint from persistence
func ReconstructComplaint(
	id uint,
	userID uint,
	title, description string,
	category vo.Category,
	priority vo.Priority,
	status vo.Status,
	assigneeID *uint,
	resolutionNote string,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Complaint{
		id:             id,
		userID:         userID,
		title:          title,
		description:    description,
		category:       category,
		priority:       priority,
		status:         status,
		assigneeID:     assigneeID,
		resolutionNote: resolutionNote,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (c *Complaint) ID() uint {
	return c.id
}

func (c *Complaint) UserID() uint {
	return c.userID
}

func (c *Complaint) Title() string {
	return c.title
}

func (c *Complaint) Description() string {
	return c.description
}

func (c *Complaint) Category() vo.Category {
	return c.category
}

func (c *Complaint) Priority() vo.Priority {
	return c.priority
}

func (c *Complaint) Status() vo.Status {
	return c.status
}

func (c *Complaint) AssigneeID() *uint {
	return c.assigneeID
}

func (c *Complaint) ResolutionNote() string {
	return c.resolutionNote
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// ChangeStatus moves the complaint through its lifecycle. Setting the
// current status again succeeds without modifying the aggregate.
func (c *Complaint) ChangeStatus(target vo.Status) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid status: %s", target)
	}
	if c.status == target {
		return nil
	}
	if !c.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition complaint from %s to %s", c.status, target)
	}

	c.status = target
	c.updatedAt = time.Now().UTC()
	return nil
}

// Resolve closes out active handling with an explanatory note.
func (c *Complaint) Resolve(note string) error {
	if err := c.ChangeStatus(vo.StatusResolved); err != nil {
		return err
	}
	c.resolutionNote = strings.TrimSpace(note)
	return nil
}

// Assign routes the complaint to a staff member for handling.
func (c *Complaint) Assign(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	c.assigneeID = &assigneeID
	if c.status == vo.StatusPending {
		c.status = vo.StatusInProgress
	}
	c.updatedAt = time.Now().UTC()
	return nil
}

// ChangePriority re-ranks handling urgency.
func (c *Complaint) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	c.priority = priority
	c.updatedAt = time.Now().UTC()
	return nil
}
