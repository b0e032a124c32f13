package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/darasaonline/darasa/core"
	"github.com/darasaonline/darasa/core/batch"
	"github.com/darasaonline/darasa/core/earnings"
	"github.com/darasaonline/darasa/core/export"
	"github.com/darasaonline/darasa/core/schedule"
	"github.com/darasaonline/darasa/core/student"
	apisvc "github.com/darasaonline/darasa/services/api"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf *core.Config
	log  core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -username USERNAME - sign in and print an access token")
	fmt.Println("  schedule -token TOKEN - print the upcoming class schedule")
	fmt.Println("  export -token TOKEN -resource batches|students|payouts [-format csv|xlsx] [-out FILE]")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginUname := loginCmd.String("username", "", "The teacher's username. The password will be prompted next.")

	scheduleCmd := flag.NewFlagSet("schedule", flag.ExitOnError)
	scheduleToken := scheduleCmd.String("token", "", "Access token from `login`.")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportToken := exportCmd.String("token", "", "Access token from `login`.")
	exportResource := exportCmd.String("resource", "batches", "Resource to export: batches, students or payouts.")
	exportFormat := exportCmd.String("format", "csv", "Output format: csv or xlsx.")
	exportOut := exportCmd.String("out", "", "Output file; defaults to the dated export name.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginUname, string(pwd))
	case "schedule":
		if err := scheduleCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.printSchedule(*scheduleToken)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.export(*exportToken, *exportResource, *exportFormat, *exportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) client(token string) (*apisvc.Client, error) {
	sess, err := core.NewSession(token)
	if err != nil {
		return nil, err
	}
	if !sess.Valid(time.Now()) {
		return nil, errors.New("token has expired; run `login` again")
	}
	return apisvc.NewClient(cli.conf, sess, cli.log), nil
}

func (cli *commandLine) login(uname, pwd string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cli.conf.RequestTimeout)
	defer cancel()

	client := apisvc.NewClient(cli.conf, nil, cli.log)
	token, err := client.Login(ctx, uname, pwd)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func (cli *commandLine) printSchedule(token string) error {
	client, err := cli.client(token)
	if err != nil {
		return err
	}
	svc := schedule.NewService(client, client, cli.log, time.Now, time.Local)

	ctx, cancel := context.WithTimeout(context.Background(), cli.conf.RequestTimeout)
	defer cancel()

	groups, err := svc.Schedule(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Println("No classes scheduled.")
		return nil
	}
	for _, g := range groups {
		fmt.Printf("%s (%s)\n", g.Label, g.Date.Format("2006-01-02"))
		for _, it := range g.Items {
			fmt.Printf("  %s  %-30s %-20s [%s]\n",
				it.StartTime.Local().Format("15:04"), it.Topic, it.BatchName, it.Status)
		}
	}
	return nil
}

func (cli *commandLine) export(token, resource, format, out string) error {
	client, err := cli.client(token)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cli.conf.RequestTimeout)
	defer cancel()

	var (
		header []string
		rows   [][]string
	)
	switch resource {
	case "batches":
		batches, err := client.ListBatches(ctx)
		if err != nil {
			return err
		}
		header = batch.ExportHeader()
		for _, b := range batches {
			rows = append(rows, batch.ExportRow(b))
		}
	case "students":
		students, err := client.ListStudents(ctx)
		if err != nil {
			return err
		}
		header = student.ExportHeader()
		for _, st := range students {
			rows = append(rows, student.ExportRow(st))
		}
	case "payouts":
		snap, err := client.GetEarnings(ctx)
		if err != nil {
			return err
		}
		header = earnings.PayoutExportHeader()
		for _, r := range snap.Payouts {
			rows = append(rows, earnings.PayoutExportRow(r))
		}
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}

	var data []byte
	switch format {
	case "csv":
		data = export.CSV(header, rows)
	case "xlsx":
		if data, err = export.Workbook(resource, header, rows); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if out == "" {
		out = export.Filename(resource, format, time.Now())
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), out)
	return nil
}
