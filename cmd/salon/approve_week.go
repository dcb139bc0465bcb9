package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	reviewShiftsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/review_shifts"
)

func approveWeekCmd() *cobra.Command {
	var (
		start    string
		branchID int64
		adminID  int64
	)

	cmd := &cobra.Command{
		Use:   "approve-week",
		Short: "Подтвердить все заявки на смены за неделю",
		Long: "Подтверждает все заявки в PENDING за неделю (понедельник - воскресенье), содержащую --start.\n" +
			"Заявкам без филиала назначается --branch. Если филиала нет ни там, ни там, ничего не меняется.",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse(domain.DateFormat, start)
			if err != nil {
				return fmt.Errorf("invalid --start %q, expected YYYY-MM-DD: %w", start, err)
			}

			a, err := newApp(configPath, false)
			if err != nil {
				return err
			}
			defer a.Close()

			req := &reviewShiftsUC.BulkApproveRequest{
				AdminID:   adminID,
				StartDate: domain.WeekStart(day),
				EndDate:   domain.WeekStart(day).AddDate(0, 0, 6),
			}
			if cmd.Flags().Changed("branch") {
				req.BranchID = &branchID
			}

			uc := reviewShiftsUC.NewUseCase(a.staff, a.catalog, a.shifts, a.txManager, a.domainMetrics(), a.log)
			result, err := uc.ApprovePending(context.Background(), req)
			if err != nil {
				return fmt.Errorf("approve week: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Week %s..%s: approved %d shift request(s)\n",
				req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), result.Approved)
			for _, id := range result.ShiftIDs {
				fmt.Fprintf(cmd.OutOrStdout(), "  shift #%d\n", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "любой день недели (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&branchID, "branch", 0, "филиал для заявок без филиала")
	cmd.Flags().Int64Var(&adminID, "admin", 0, "ID администратора, принимающего решение")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}
