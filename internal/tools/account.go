package tools

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// Purchase is one line of a user's purchase history.
type Purchase struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Date  string
}

// UserProfile carries the per-run user context the account tools read.
type UserProfile struct {
	UID       string
	IsProUser bool
	Purchases []Purchase
}

// Tier returns the display name of the user's subscription tier.
func (p UserProfile) Tier() string {
	if p.IsProUser {
		return "Pro"
	}
	return "Free"
}

// Greeting returns a tier-appropriate welcome message.
func (p UserProfile) Greeting() string {
	if p.IsProUser {
		return "Welcome back to our premium service! We value your continued support."
	}
	return "Welcome! Consider upgrading to our Pro plan for additional features."
}

// UserDirectory resolves the active user profile for a run. The account
// tools read whatever profile is currently active, which is how per-run
// local context reaches tool code.
type UserDirectory struct {
	profiles map[string]UserProfile
	active   string
	mu       sync.RWMutex
}

// DefaultUserDirectory seeds the directory with the demo users.
func DefaultUserDirectory() *UserDirectory {
	return NewUserDirectory(
		UserProfile{
			UID:       "user123",
			IsProUser: true,
			Purchases: []Purchase{
				{ID: "p1", Name: "Basic Plan", Price: decimal.NewFromFloat(9.99), Date: "2023-01-15"},
				{ID: "p2", Name: "Premium Add-on", Price: decimal.NewFromFloat(4.99), Date: "2023-02-20"},
			},
		},
		UserProfile{UID: "user456", IsProUser: false},
	)
}

// NewUserDirectory builds a directory from the given profiles. The first
// profile becomes the active one.
func NewUserDirectory(profiles ...UserProfile) *UserDirectory {
	d := &UserDirectory{profiles: make(map[string]UserProfile)}
	for i, p := range profiles {
		d.profiles[p.UID] = p
		if i == 0 {
			d.active = p.UID
		}
	}
	return d
}

// SetActive switches the profile the account tools operate on.
func (d *UserDirectory) SetActive(uid string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.profiles[uid]; !ok {
		return fmt.Errorf("unknown user %s", uid)
	}
	d.active = uid
	return nil
}

// Active returns the profile currently in effect.
func (d *UserDirectory) Active() UserProfile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.profiles[d.active]
}

// PlanFeatures maps a subscription tier to its feature list.
func PlanFeatures(tier string) []string {
	switch tier {
	case "Pro":
		return []string{
			"Unlimited requests",
			"Priority support",
			"Purchase history export",
			"Early access to new agents",
		}
	default:
		return []string{
			"Limited requests",
			"Community support",
		}
	}
}

// NewGetUserInfoTool returns a tool reporting the active user's account basics.
func NewGetUserInfoTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "get_user_info",
			Description: "Get basic information about the current user",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			profile := deps.Users.Active()
			deps.Log.Debugw("Tool: get_user_info called", "uid", profile.UID)

			return map[string]interface{}{
				"uid":          profile.UID,
				"account_type": profile.Tier(),
			}, nil
		})
}

// NewGetPurchaseHistoryTool returns a tool listing the active user's purchases.
func NewGetPurchaseHistoryTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "get_purchase_history",
			Description: "Get the purchase history for the current user",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			profile := deps.Users.Active()
			deps.Log.Debugw("Tool: get_purchase_history called", "uid", profile.UID, "purchases", len(profile.Purchases))

			if len(profile.Purchases) == 0 {
				return map[string]interface{}{
					"uid":       profile.UID,
					"purchases": []map[string]interface{}{},
					"message":   "No purchase history found.",
				}, nil
			}

			purchases := make([]map[string]interface{}, 0, len(profile.Purchases))
			for _, p := range profile.Purchases {
				purchases = append(purchases, map[string]interface{}{
					"id":    p.ID,
					"name":  p.Name,
					"price": "$" + p.Price.StringFixed(2),
					"date":  p.Date,
				})
			}

			return map[string]interface{}{
				"uid":       profile.UID,
				"purchases": purchases,
			}, nil
		})
}

// NewGetPersonalizedGreetingTool returns a tool producing a tier-aware greeting.
func NewGetPersonalizedGreetingTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "get_personalized_greeting",
			Description: "Get a personalized greeting based on user status",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			profile := deps.Users.Active()
			deps.Log.Debugw("Tool: get_personalized_greeting called", "uid", profile.UID, "tier", profile.Tier())

			return map[string]interface{}{
				"greeting": profile.Greeting(),
			}, nil
		})
}

// NewGetPlanFeaturesTool returns a tool mapping a tier to its features.
func NewGetPlanFeaturesTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "get_plan_features",
			Description: "List the features included in a subscription tier",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			tier, _ := args["tier"].(string)
			if tier == "" {
				tier = deps.Users.Active().Tier()
			}

			deps.Log.Debugw("Tool: get_plan_features called", "tier", tier)

			return map[string]interface{}{
				"tier":     tier,
				"features": PlanFeatures(tier),
			}, nil
		})
}
