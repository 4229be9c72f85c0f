package seed

import (
	"time"

	"github.com/64robkash/website-manager/internal/model"
)

// siteFixture is a starter site with a placeholder id used only to
// wire up the task and log fixtures before the store assigns real ids.
type siteFixture struct {
	id       string
	name     string
	url      string
	platform string
}

type taskFixture struct {
	id          string
	siteID      string
	title       string
	status      model.TaskStatus
	dueIn       time.Duration // offset from seeding time
	notes       string
	recurrence  model.Recurrence
	checklist   []string
	checkedOff  int // leading checklist items already done
	completedIn *time.Duration
}

type logFixture struct {
	taskID    string
	siteID    string
	action    model.ActivityAction
	siteName  string
	taskTitle string
}

const day = 24 * time.Hour

var completedYesterday = -day

var starterSites = []siteFixture{
	{id: "1", name: "Personal Blog", url: "https://myblog.com", platform: "WordPress"},
	{id: "2", name: "E-commerce Store", url: "https://mystore.com", platform: "Shopify"},
	{id: "3", name: "Portfolio Site", url: "https://portfolio.dev", platform: "Netlify"},
}

var starterTasks = []taskFixture{
	{
		id: "1", siteID: "1",
		title:      "Update security plugins",
		status:     model.StatusNotStarted,
		dueIn:      2 * day,
		notes:      "Check for WordPress core updates and security patches",
		recurrence: model.RecurrenceWeekly,
		checklist:  []string{"Backup website", "Update WordPress core", "Update security plugins"},
	},
	{
		id: "2", siteID: "2",
		title:      "Inventory review",
		status:     model.StatusInProgress,
		dueIn:      0,
		notes:      "Review stock levels and update product availability",
		recurrence: model.RecurrenceMonthly,
		checklist:  []string{"Export inventory report", "Check low stock items", "Update product listings"},
		checkedOff: 1,
	},
	{
		id: "3", siteID: "3",
		title:       "Performance optimization",
		status:      model.StatusDone,
		dueIn:       -day,
		notes:       "Optimize images and improve Core Web Vitals scores",
		recurrence:  model.RecurrenceMonthly,
		checklist:   []string{"Compress images", "Minify CSS/JS", "Test performance"},
		checkedOff:  3,
		completedIn: &completedYesterday,
	},
	{
		id: "4", siteID: "1",
		title:      "Content backup",
		status:     model.StatusNotStarted,
		dueIn:      -3 * day,
		notes:      "Create full backup of blog content and media files",
		recurrence: model.RecurrenceWeekly,
		checklist:  []string{"Export blog posts", "Download media files", "Store in cloud backup"},
	},
	{
		id: "5", siteID: "2",
		title:      "Check uptime monitoring",
		status:     model.StatusNotStarted,
		dueIn:      day,
		notes:      "Verify all monitoring services are working correctly",
		recurrence: model.RecurrenceDaily,
		checklist:  []string{"Check monitoring dashboard", "Verify alert notifications"},
	},
	{
		id: "6", siteID: "3",
		title:      "Review analytics",
		status:     model.StatusInProgress,
		dueIn:      0,
		notes:      "Daily check of website analytics and performance metrics",
		recurrence: model.RecurrenceDaily,
		checklist:  []string{"Check Google Analytics", "Review Core Web Vitals", "Monitor error logs"},
		checkedOff: 1,
	},
}

var starterLogs = []logFixture{
	{taskID: "3", siteID: "3", action: model.ActionTaskCompleted, siteName: "Portfolio Site", taskTitle: "Performance optimization"},
	{taskID: "2", siteID: "2", action: model.ActionTaskStarted, siteName: "E-commerce Store", taskTitle: "Inventory review"},
	{taskID: "1", siteID: "1", action: model.ActionTaskCreated, siteName: "Personal Blog", taskTitle: "Update security plugins"},
	{taskID: "6", siteID: "3", action: model.ActionTaskStarted, siteName: "Portfolio Site", taskTitle: "Review analytics"},
}
