package sheet

// SeedRecords returns the built-in records a new sheet starts with.
func SeedRecords() []Record {
	return []Record{
		{
			ID:         "1",
			JobRequest: "Launch new media campaign for product launch and market penetration strategy",
			Submitted:  "28-10-2024",
			Status:     StatusNeedToStart,
			Submitter:  "Max Khan",
			Assigned:   "www.fruitkart.com",
			Priority:   PriorityHigh,
			DueDate:    "10-30-2024",
			EstValue:   "8,20,000",
		},
		{
			ID:         "2",
			JobRequest: "Update press kit for company redesign and brand refresh initiative",
			Submitted:  "28-10-2024",
			Status:     StatusInProgress,
			Submitter:  "Mark Johnson",
			Assigned:   "www.markjohns.com",
			Priority:   PriorityMedium,
			DueDate:    "10-30-2024",
			EstValue:   "1,500,000",
		},
		{
			ID:         "3",
			JobRequest: "Analyze user testing feedback for app improvement and optimization",
			Submitted:  "05-10-2024",
			Status:     StatusComplete,
			Submitter:  "Emily Green",
			Assigned:   "www.marketgu.com",
			Priority:   PriorityLow,
			DueDate:    "16-10-2024",
			EstValue:   "4,750,000",
		},
		{
			ID:         "4",
			JobRequest: "Design new features for the website and mobile application",
			Submitted:  "10-01-2025",
			Status:     StatusComplete,
			Submitter:  "Tom Wright",
			Assigned:   "www.example.com",
			Priority:   PriorityLow,
			DueDate:    "16-01-2025",
			EstValue:   "5,500,000",
		},
		{
			ID:         "5",
			JobRequest: "Prepare financial report for Q4 and annual business review",
			Submitted:  "25-01-2025",
			Status:     StatusBlocked,
			Submitter:  "Jessica Brown",
			Assigned:   "www.jessicab.com",
			Priority:   PriorityHigh,
			DueDate:    "30-01-2025",
			EstValue:   "2,800,000",
		},
	}
}
