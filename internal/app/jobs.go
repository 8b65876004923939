package app

import (
	"os"
	"time"

	"github.com/queenkoba/queenkoba/internal/domain"
	"github.com/queenkoba/queenkoba/pkg/metrics"
	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
		go a.SchedProcessMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@hourly", func() {
		a.SchedExpirePromotionsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedPruneCartsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask system monitor
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	_cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(_cpuuse) > 0 {
		metrics.SetGauge("system_cpuuse", int64(_cpuuse[0]*100)) // percentage * 100
	}

	_meminfo, err := mem.VirtualMemory()
	if err == nil {
		metrics.SetGauge("system_memuse", int64(_meminfo.Used/1024/1024))
	}
}

// SchedProcessMonitorTask app process monitor
func (a *Application) SchedProcessMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	if memInfo, err := p.MemoryInfo(); err == nil && memInfo != nil {
		metrics.SetGauge("process_rss", int64(memInfo.RSS/1024/1024))
	}
	if cpuPercent, err := p.CPUPercent(); err == nil {
		metrics.SetGauge("process_cpuuse", int64(cpuPercent*100))
	}
}

// SchedPruneCartsTask drops cart lines older than 90 days. Stale carts keep
// referencing long-gone promotions and prices.
func (a *Application) SchedPruneCartsTask() {
	result := a.gormDB.
		Where("added_at < ?", time.Now().Add(-time.Hour*24*90)).
		Delete(&domain.CartItem{})
	if result.Error != nil {
		zap.L().Error("cart prune failed", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		zap.L().Info("pruned stale cart items", zap.Int64("count", result.RowsAffected))
	}
}

// SchedExpirePromotionsTask marks active promotions past their expiry.
func (a *Application) SchedExpirePromotionsTask() {
	result := a.gormDB.Model(&domain.Promotion{}).
		Where("status = ? AND expires IS NOT NULL AND expires < ?", domain.PromotionStatusActive, time.Now()).
		Update("status", domain.PromotionStatusExpired)
	if result.Error != nil {
		zap.L().Error("promotion expiry sweep failed", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		zap.L().Info("expired promotions", zap.Int64("count", result.RowsAffected))
	}
}
