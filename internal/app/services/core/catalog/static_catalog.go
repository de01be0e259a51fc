package catalog

import (
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/responses"
)

// StaticServices is the catalog shown when the backend has nothing better.
func StaticServices() []responses.Service {
	return []responses.Service{
		{
			Slug:        constvars.ServiceIndividualCounseling,
			Title:       "Individual Counseling",
			Subtitle:    "Personal Healing Journey",
			Description: "Transform your life through personalized, one-on-one therapy sessions designed to address your unique challenges and unlock your potential.",
			Features: []string{
				"Anxiety & Depression Treatment",
				"Trauma & PTSD Recovery",
				"Grief & Loss Counseling",
				"Addiction Recovery Support",
				"Life Transitions & Growth",
			},
			Duration:  "50-minute sessions",
			Badge:     "Most Popular",
			Available: true,
		},
		{
			Slug:        constvars.ServiceCouplesCounseling,
			Title:       "Couples Counseling",
			Subtitle:    "Relationship Renewal",
			Description: "Rebuild, strengthen, and deepen your relationship through evidence-based couples therapy techniques and faith-centered guidance.",
			Features: []string{
				"Communication Mastery",
				"Conflict Resolution Skills",
				"Intimacy & Connection Building",
				"Pre-marital Preparation",
				"Infidelity Recovery Program",
			},
			Duration:  "75-minute sessions",
			Badge:     "Recommended",
			Available: true,
		},
		{
			Slug:        constvars.ServiceFamilyCounseling,
			Title:       "Family Therapy",
			Subtitle:    "Restoring Family Bonds",
			Description: "Heal family dynamics and create lasting harmony through comprehensive family systems therapy and biblical principles.",
			Features: []string{
				"Parent-Child Relationship Repair",
				"Sibling Conflict Resolution",
				"Blended Family Integration",
				"Teen & Adolescent Support",
				"Family Crisis Management",
			},
			Duration:  "90-minute sessions",
			Badge:     "Comprehensive",
			Available: true,
		},
		{
			Slug:        constvars.ServiceGroupTherapy,
			Title:       "Group Therapy",
			Subtitle:    "Community Healing",
			Description: "Experience the power of shared healing in supportive group environments where faith and therapy intersect.",
			Features: []string{
				"Specialized Support Groups",
				"Skills-Based Workshops",
				"Recovery & Addiction Circles",
				"Grief & Loss Communities",
				"Gender-Specific Groups",
			},
			Duration:  "90-minute sessions",
			Badge:     "Community",
			Available: true,
		},
		{
			Slug:        constvars.ServiceChristianCounseling,
			Title:       "Christian Counseling",
			Subtitle:    "Faith-Based Care",
			Description: "Counseling grounded in Christian faith, integrating biblical principles with professional therapy for spiritual and emotional growth.",
			Features: []string{
				"Spiritual Struggles & Doubt",
				"Prayer & Scripture Integration",
				"Faith-Centered Marriage Support",
			},
			Duration:  "50-minute sessions",
			Available: true,
		},
		{
			Slug:        constvars.ServiceCrisisIntervention,
			Title:       "Crisis Intervention",
			Subtitle:    "Immediate Support",
			Description: "24/7 emergency mental health support when you need it most, providing immediate stabilization and safety planning.",
			Features: []string{
				"24/7 Crisis Hotline Access",
				"Emergency Session Scheduling",
				"Safety Planning & Assessment",
				"Resource Coordination",
				"Follow-up Crisis Support",
			},
			Duration:  "As needed",
			Badge:     "24/7 Available",
			Available: true,
		},
	}
}
