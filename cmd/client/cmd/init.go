// cmd/client/cmd/init.go
package cmd

import (
	"timekeeper/cmd/client/cmd/achievement"
	"timekeeper/cmd/client/cmd/goal"
	"timekeeper/cmd/client/cmd/session"
	"timekeeper/cmd/client/cmd/stats"
	"timekeeper/cmd/client/cmd/sync"
	"timekeeper/cmd/client/cmd/timer"
)

func init() {
	// Команды работы с целями
	rootCmd.AddCommand(goal.GoalCmd)
	goal.GoalCmd.AddCommand(goal.CreateCmd)
	goal.GoalCmd.AddCommand(goal.ListCmd)
	goal.GoalCmd.AddCommand(goal.ArchiveCmd)
	goal.GoalCmd.AddCommand(goal.RestoreCmd)
	goal.GoalCmd.AddCommand(goal.DeleteCmd)

	// Таймер
	rootCmd.AddCommand(timer.TimerCmd)
	timer.TimerCmd.AddCommand(timer.StartCmd)
	timer.TimerCmd.AddCommand(timer.StopCmd)
	timer.TimerCmd.AddCommand(timer.StatusCmd)

	// Ручные сессии
	rootCmd.AddCommand(session.SessionCmd)
	session.SessionCmd.AddCommand(session.AddCmd)

	// Синхронизация
	rootCmd.AddCommand(sync.SyncCmd)
	sync.SyncCmd.AddCommand(sync.ExportCmd)
	sync.SyncCmd.AddCommand(sync.ImportCmd)
	sync.SyncCmd.AddCommand(sync.PullCmd)
	sync.SyncCmd.AddCommand(sync.PeerCmd)

	rootCmd.AddCommand(achievement.AchievementCmd)
	rootCmd.AddCommand(stats.StatsCmd)
	rootCmd.AddCommand(serveCmd)
}
