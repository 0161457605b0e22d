package worker

import "sync"

// Task 交由 pool 執行的工作單元
type Task func()

// Pool 固定數量 goroutine 的工作池，用來限制 bcrypt 等 CPU 密集運算的並行數
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool 建立 n 個 worker 的工作池，n<=0 時預設為 1
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Run 將 t 送進 p 並等待完成；p 為 nil 時直接在目前 goroutine 執行
func Run(p Pool, t Task) {
	if p == nil {
		t()
		return
	}
	done := make(chan struct{})
	p.Submit(func() {
		defer close(done)
		t()
	})
	<-done
}
