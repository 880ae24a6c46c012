package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"visit-assistant/internal/handler"
	"visit-assistant/internal/handoff"
	"visit-assistant/internal/models"
)

const (
	rewriteTimeout = 60 * time.Second
	// past visits stay in the compose list this long so thanks can be sent
	recentVisitDays = 30
)

func runMenu(ctx context.Context, a *app, in io.Reader) error {
	fmt.Println("📖 Visit Assistant")
	fmt.Println("==================")

	scanner := bufio.NewScanner(in)
	lang := a.cfg.DefaultLanguage

	for {
		fmt.Println("\nCommands:")
		fmt.Println("  1. View upcoming visits")
		fmt.Println("  2. Compose a message")
		fmt.Println("  3. Request hosts")
		fmt.Printf("  4. Switch language (current: %s)\n", lang)
		fmt.Println("  5. Exit")
		fmt.Print("\nEnter command (1-5): ")

		if !scanner.Scan() {
			return nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			printVisits(os.Stdout, a.storage.GetUpcomingVisits(time.Now()), lang)
		case "2":
			composeMessage(ctx, scanner, a, lang)
		case "3":
			requestHosts(scanner, a, lang)
		case "4":
			lang = nextLanguage(lang)
			fmt.Printf("Language: %s\n", lang)
		case "5":
			fmt.Println("Goodbye! 👋")
			return nil
		default:
			fmt.Println("Invalid command. Please try again.")
		}
	}
}

func composeMessage(ctx context.Context, scanner *bufio.Scanner, a *app, lang models.Language) {
	visits := a.storage.GetVisitsSince(time.Now().AddDate(0, 0, -recentVisitDays))
	if len(visits) == 0 {
		fmt.Println("\nNo upcoming or recent visits.")
		return
	}
	for i, v := range visits {
		fmt.Printf("  %d. %s - %s (host: %s, %s)\n", i+1, v.Date.Format("2006-01-02"), v.SpeakerName, v.HostName, v.Status)
	}
	idx, ok := choose(scanner, "Visit", len(visits))
	if !ok {
		return
	}
	visit := visits[idx]

	for i, mt := range models.MessageTypes {
		fmt.Printf("  %d. %s\n", i+1, mt)
	}
	mtIdx, ok := choose(scanner, "Message", len(models.MessageTypes))
	if !ok {
		return
	}

	role := models.RoleSpeaker
	if visit.HasHost() {
		fmt.Println("  1. speaker")
		fmt.Println("  2. host")
		roleIdx, ok := choose(scanner, "Recipient", 2)
		if !ok {
			return
		}
		if roleIdx == 1 {
			role = models.RoleHost
		}
	}

	if err := a.composer.Open(visit.ID, models.MessageTypes[mtIdx], role, lang); err != nil {
		fmt.Printf("❌ Error opening message: %v\n", err)
		return
	}
	defer a.composer.Close()

	for {
		printPreview(a.composer)
		fmt.Println("\n  c. Copy and mark as sent   m. Mark as sent   l. Open in WhatsApp")
		fmt.Println("  e. Edit text   t. Edit template   r. Reset template   w. Rewrite")
		if a.whatsapp != nil {
			fmt.Println("  s. Send directly")
		}
		fmt.Println("  q. Close")
		fmt.Print("\nAction: ")

		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "c":
			report(a.composer.CopyAndMarkSent(), "📋 Copied and marked as sent")
		case "m":
			report(a.composer.MarkSent(), "✅ Marked as sent")
		case "l":
			if err := a.composer.Copy(); err != nil {
				fmt.Printf("❌ %v\n", err)
			}
			deepLink, err := a.composer.Handoff()
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				continue
			}
			printLink(os.Stdout, deepLink)
		case "e":
			text := readBlock(scanner, "New text")
			report(a.composer.SetText(text), "✏️ Text updated")
		case "t":
			editTemplate(scanner, a.composer)
		case "r":
			report(a.composer.ResetTemplate(), "↩️ Built-in template restored")
		case "w":
			fmt.Print("Instruction (e.g. shorter, warmer): ")
			if !scanner.Scan() {
				return
			}
			fmt.Println("✨ Rewriting...")
			rctx, cancel := context.WithTimeout(ctx, rewriteTimeout)
			err := a.composer.Rewrite(rctx, strings.TrimSpace(scanner.Text()))
			cancel()
			report(err, "✨ Text rewritten")
		case "s":
			if err := a.sendDirect(ctx); err != nil {
				fmt.Printf("❌ %v\n", err)
			}
		case "q":
			return
		default:
			fmt.Println("Invalid action. Please try again.")
		}
	}
}

func editTemplate(scanner *bufio.Scanner, composer *handler.Composer) {
	current, err := composer.EditTemplate()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Println("\nCurrent template:")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(current)
	fmt.Println(strings.Repeat("-", 60))

	text := readBlock(scanner, "New template (empty to cancel)")
	if strings.TrimSpace(text) == "" {
		composer.CancelEdit()
		return
	}
	report(composer.SaveTemplate(text), "💾 Template saved")
}

func requestHosts(scanner *bufio.Scanner, a *app, lang models.Language) {
	visits := a.storage.GetVisitsWithoutHost(time.Now())
	if len(visits) == 0 {
		fmt.Println("\nEvery upcoming visit has a host.")
		return
	}

	profile, _ := a.storage.GetProfile()
	req := handler.NewHostRequest(a.templates, profile, handoff.SystemClipboard{}, visits, lang)

	for {
		fmt.Println()
		fmt.Println(strings.Repeat("-", 60))
		fmt.Println(req.Text())
		fmt.Println(strings.Repeat("-", 60))
		fmt.Println("\n  c. Copy   l. Open in WhatsApp   e. Edit text   f. Switch language   q. Close")
		fmt.Print("\nAction: ")

		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "c":
			report(req.Copy(), "📋 Copied")
		case "l":
			if err := req.Copy(); err != nil {
				fmt.Printf("❌ %v\n", err)
			}
			deepLink, err := req.Handoff()
			if err != nil {
				fmt.Printf("❌ %v\n", err)
				continue
			}
			printLink(os.Stdout, deepLink)
		case "e":
			req.SetText(readBlock(scanner, "New text"))
		case "f":
			lang = nextLanguage(lang)
			req.Update(a.storage.GetVisitsWithoutHost(time.Now()), lang)
		case "q":
			return
		default:
			fmt.Println("Invalid action. Please try again.")
		}
	}
}

func printPreview(composer *handler.Composer) {
	key := composer.Key()
	fmt.Printf("\n✉️  %s", key)
	if composer.IsCustomTemplate() {
		fmt.Print(" (custom template)")
	}
	if composer.IsFirstContact() {
		fmt.Print(" (first contact)")
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(composer.Text())
	fmt.Println(strings.Repeat("-", 60))
}

// choose reads a 1-based choice and returns it 0-based
func choose(scanner *bufio.Scanner, label string, n int) (int, bool) {
	fmt.Printf("%s (1-%d): ", label, n)
	if !scanner.Scan() {
		return 0, false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || choice < 1 || choice > n {
		fmt.Println("Invalid choice.")
		return 0, false
	}
	return choice - 1, true
}

// readBlock reads lines until a line holding a single "."
func readBlock(scanner *bufio.Scanner, label string) string {
	fmt.Printf("%s, end with a line containing only \".\":\n", label)
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func report(err error, success string) {
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	fmt.Println(success)
}

func nextLanguage(lang models.Language) models.Language {
	for i, l := range models.Languages {
		if l == lang {
			return models.Languages[(i+1)%len(models.Languages)]
		}
	}
	return models.Languages[0]
}
